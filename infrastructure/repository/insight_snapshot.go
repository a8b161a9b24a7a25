package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/customer-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-insights-api/internal/domain"
)

const insightSnapshotsTable = "insight_snapshots"

// InsightSnapshotRepository guarda o histórico de bundles calculados.
// A escrita é best-effort: uma falha aqui não invalida a agregação.
type InsightSnapshotRepository interface {
	Save(snapshot *domain.InsightSnapshot) error
	GetLatestByCustomerID(customerID string) (*domain.InsightSnapshot, error)
	DeleteOlderThan(retention time.Duration) (int64, error)
}

type insightSnapshotRepository struct {
	conn *postgres.Connection
}

func NewInsightSnapshotRepository(conn *postgres.Connection) InsightSnapshotRepository {
	return &insightSnapshotRepository{
		conn: conn,
	}
}

func (r *insightSnapshotRepository) Save(snapshot *domain.InsightSnapshot) error {
	bundleJSON, err := json.Marshal(snapshot.Bundle)
	if err != nil {
		return fmt.Errorf("erro ao serializar o bundle: %w", err)
	}

	query, args, err := squirrel.
		Insert(insightSnapshotsTable).
		Columns("id", "customer_id", "bundle", "computed_at").
		Values(snapshot.ID, snapshot.CustomerID, bundleJSON, snapshot.ComputedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar snapshot de insights: %w", err)
	}

	return nil
}

func (r *insightSnapshotRepository) GetLatestByCustomerID(customerID string) (*domain.InsightSnapshot, error) {
	query, args, err := squirrel.
		Select("id", "customer_id", "bundle", "computed_at").
		From(insightSnapshotsTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("computed_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	snapshot := &domain.InsightSnapshot{}
	var bundleJSON []byte

	err = row.Scan(&snapshot.ID, &snapshot.CustomerID, &bundleJSON, &snapshot.ComputedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if err := json.Unmarshal(bundleJSON, &snapshot.Bundle); err != nil {
		return nil, fmt.Errorf("erro ao desserializar o bundle: %w", err)
	}

	return snapshot, nil
}

func (r *insightSnapshotRepository) DeleteOlderThan(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)

	query, args, err := squirrel.
		Delete(insightSnapshotsTable).
		Where(squirrel.Lt{"computed_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover snapshots antigos: %w", err)
	}

	return result.RowsAffected()
}
