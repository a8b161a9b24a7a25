package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/customer-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-insights-api/internal/domain"
)

const processedEventsTable = "processed_webhook_events"

// ProcessedEventRepository guarda os IDs de entrega de webhooks já
// processados, usados apenas para supressão de redelivery. A retenção é
// limitada: entradas antigas são removidas pelo job de limpeza.
type ProcessedEventRepository interface {
	IsProcessed(eventID string) (bool, error)
	MarkProcessed(event *domain.ProcessedWebhookEvent) error
	DeleteOlderThan(retention time.Duration) (int64, error)
}

type processedEventRepository struct {
	conn *postgres.Connection
}

func NewProcessedEventRepository(conn *postgres.Connection) ProcessedEventRepository {
	return &processedEventRepository{
		conn: conn,
	}
}

func (r *processedEventRepository) IsProcessed(eventID string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(processedEventsTable).
		Where(squirrel.Eq{"event_id": eventID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var exists int
	err = r.conn.QueryRow(query, args...).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao consultar evento processado: %w", err)
	}

	return true, nil
}

func (r *processedEventRepository) MarkProcessed(event *domain.ProcessedWebhookEvent) error {
	query, args, err := squirrel.
		Insert(processedEventsTable).
		Columns("event_id", "event_type", "customer_id", "received_at").
		Values(event.EventID, event.EventType, event.CustomerID, event.ReceivedAt).
		// Entregas concorrentes do mesmo evento não devem falhar a marcação
		Suffix("ON CONFLICT (event_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao marcar evento como processado: %w", err)
	}

	return nil
}

func (r *processedEventRepository) DeleteOlderThan(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)

	query, args, err := squirrel.
		Delete(processedEventsTable).
		Where(squirrel.Lt{"received_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover eventos antigos: %w", err)
	}

	return result.RowsAffected()
}
