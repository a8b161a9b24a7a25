package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-insights-api/infrastructure/cache"
	"github.com/vfg2006/customer-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe"
	"github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/vfg2006/customer-insights-api/infrastructure/repository"
	"github.com/vfg2006/customer-insights-api/internal/api"
	"github.com/vfg2006/customer-insights-api/internal/config"
	"github.com/vfg2006/customer-insights-api/internal/scheduler"
	"github.com/vfg2006/customer-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer-insights-api/internal/usecases/eventing"
	"github.com/vfg2006/customer-insights-api/internal/usecases/insighting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	processedEventRepo := repository.NewProcessedEventRepository(pgConn)
	snapshotRepo := repository.NewInsightSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	stripeClient := stripeclient.NewClient(cfg)
	stripeIntegrator := stripe.New(cfg, stripeClient)

	insightCache := cache.NewMemoryInsightCache(
		time.Duration(cfg.InsightCache.TTLMinutes) * time.Minute,
	)

	// Inicializa o serviço de insights com histórico de snapshots
	insightService := insighting.NewService(cfg, stripeIntegrator, insightCache).
		WithSnapshots(snapshotRepo)

	webhookService := eventing.NewService(cfg, insightService, processedEventRepo)

	// Inicializa o agendador de limpeza de retenção
	retentionService := scheduler.NewWebhookRetentionService(
		processedEventRepo,
		snapshotRepo,
		cfg,
	)

	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de webhooks")
	} else {
		logrus.Info("Agendador de retenção de webhooks iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		webhookService,
		authenticator,
		retentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
