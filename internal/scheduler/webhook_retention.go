package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-insights-api/infrastructure/repository"
	"github.com/vfg2006/customer-insights-api/internal/config"
)

// WebhookRetentionConfig representa a configuração do agendador de limpeza
// de eventos de webhook processados
type WebhookRetentionConfig struct {
	CronSchedule   string
	RetentionHours int
	Enabled        bool
}

// WebhookRetentionService gerencia o agendamento e execução da limpeza dos
// registros de deduplicação de webhooks e de snapshots de insights antigos
type WebhookRetentionService struct {
	scheduler          *gocron.Scheduler
	config             WebhookRetentionConfig
	processedEvents    repository.ProcessedEventRepository
	snapshotRepo       repository.InsightSnapshotRepository
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewWebhookRetentionService cria uma nova instância do serviço de limpeza de retenção
func NewWebhookRetentionService(
	processedEvents repository.ProcessedEventRepository,
	snapshotRepo repository.InsightSnapshotRepository,
	appConfig *config.Config,
) *WebhookRetentionService {
	retentionConfig := WebhookRetentionConfig{
		CronSchedule:   appConfig.WebhookRetention.CronSchedule,
		RetentionHours: appConfig.WebhookRetention.RetentionHours,
		Enabled:        appConfig.WebhookRetention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   retentionConfig.CronSchedule,
		"retention_hours": retentionConfig.RetentionHours,
		"enabled":         retentionConfig.Enabled,
	}).Info("Configuração do agendador de retenção de webhooks carregada")

	return &WebhookRetentionService{
		scheduler:       scheduler,
		config:          retentionConfig,
		processedEvents: processedEvents,
		snapshotRepo:    snapshotRepo,
		cleanupRunning:  false,
	}
}

// Start inicia o agendador
func (s *WebhookRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de retenção de webhooks desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de webhooks")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de retenção de webhooks: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de webhooks")
		s.scheduler.Stop()
	}()

	return nil
}

// runCleanup remove registros mais antigos que a janela de retenção.
// A janela precisa cobrir o período de retry do remetente para que a
// deduplicação continue funcionando.
func (s *WebhookRetentionService) runCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de retenção já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	retention := time.Duration(s.config.RetentionHours) * time.Hour

	logrus.WithField("retention", retention.String()).Info("Iniciando limpeza de retenção de webhooks")

	removedEvents, err := s.processedEvents.DeleteOlderThan(retention)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover eventos de webhook antigos")
	}

	removedSnapshots, err := s.snapshotRepo.DeleteOlderThan(retention)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots de insights antigos")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":          duration.String(),
		"removed_events":    removedEvents,
		"removed_snapshots": removedSnapshots,
	}).Info("Limpeza de retenção de webhooks concluída")

	s.lastRunCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma execução da limpeza de retenção
func (s *WebhookRetentionService) TriggerManualSync() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de retenção já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de retenção de webhooks")
	go s.runCleanup()
}

// GetStatus retorna o status atual do agendador
func (s *WebhookRetentionService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":       s.config.Enabled,
		"cleanup_cron":          s.config.CronSchedule,
		"retention_hours":       s.config.RetentionHours,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
