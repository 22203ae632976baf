package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
)

var snapshotColumns = []string{"snapshot_time", "outage_id", "status", "num_people", "lat", "lng"}

// pgQuerier - общее подмножество pgxpool.Pool и pgx.Tx
type pgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresSnapshotRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSnapshotRepository(db *pgxpool.Pool) service.SnapshotRepository {
	return &PostgresSnapshotRepository{db: db}
}

// SaveSnapshot копирует партию снимка через COPY. Пустая партия не пишется
func (r *PostgresSnapshotRepository) SaveSnapshot(ctx context.Context, events []models.OutageEvent, at time.Time) error {
	if len(events) == 0 {
		return nil
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"outage_snapshots"},
		snapshotColumns,
		pgx.CopyFromSlice(len(events), func(i int) ([]any, error) {
			e := events[i]
			return []any{at, e.ID, e.Status, e.NumPeople, e.Lat, e.Lng}, nil
		}),
	)
	if err != nil {
		return &models.StorageError{Op: "insert snapshot", Err: err}
	}
	return nil
}

// ReadWindow выполняет fn в транзакции REPEATABLE READ только для чтения
func (r *PostgresSnapshotRepository) ReadWindow(ctx context.Context, fn func(service.SnapshotReader) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return &models.StorageError{Op: "begin read transaction", Err: err}
	}
	defer tx.Rollback(ctx)

	if err := fn(&pgSnapshotReader{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &models.StorageError{Op: "commit read transaction", Err: err}
	}
	return nil
}

// CountRows возвращает общее число строк снимков
func (r *PostgresSnapshotRepository) CountRows(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM outage_snapshots;`).Scan(&count); err != nil {
		return 0, &models.StorageError{Op: "count snapshot rows", Err: err}
	}
	return count, nil
}

type pgSnapshotReader struct {
	q pgQuerier
}

func (r *pgSnapshotReader) DistinctSnapshotTimes(ctx context.Context, since, until time.Time) ([]time.Time, error) {
	query := `
		SELECT DISTINCT snapshot_time
		FROM outage_snapshots
		WHERE snapshot_time >= $1 AND snapshot_time <= $2
		ORDER BY snapshot_time;
	`
	rows, err := r.q.Query(ctx, query, since, until)
	if err != nil {
		return nil, &models.StorageError{Op: "query snapshot times", Err: err}
	}
	defer rows.Close()

	times := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, &models.StorageError{Op: "scan snapshot time", Err: err}
		}
		times = append(times, t.UTC())
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "iterate snapshot times", Err: err}
	}
	return times, nil
}

func (r *pgSnapshotReader) OutageIDsAt(ctx context.Context, at time.Time) (map[string]struct{}, error) {
	query := `SELECT DISTINCT outage_id FROM outage_snapshots WHERE snapshot_time = $1;`

	rows, err := r.q.Query(ctx, query, at)
	if err != nil {
		return nil, &models.StorageError{Op: "query outage ids", Err: err}
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, &models.StorageError{Op: "scan outage id", Err: err}
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "iterate outage ids", Err: err}
	}
	return ids, nil
}

func (r *pgSnapshotReader) AggregatesSince(ctx context.Context, since, until time.Time) ([]models.TrendDataPoint, error) {
	query := `
		SELECT snapshot_time, COUNT(DISTINCT outage_id), COALESCE(SUM(num_people), 0)
		FROM outage_snapshots
		WHERE snapshot_time >= $1 AND snapshot_time <= $2
		GROUP BY snapshot_time
		ORDER BY snapshot_time;
	`
	rows, err := r.q.Query(ctx, query, since, until)
	if err != nil {
		return nil, &models.StorageError{Op: "query snapshot aggregates", Err: err}
	}
	defer rows.Close()

	points := make([]models.TrendDataPoint, 0)
	for rows.Next() {
		var (
			t              time.Time
			outages, total int64
		)
		if err := rows.Scan(&t, &outages, &total); err != nil {
			return nil, &models.StorageError{Op: "scan snapshot aggregate", Err: err}
		}
		points = append(points, models.TrendDataPoint{
			Time:                t.UTC(),
			TotalOutages:        int(outages),
			TotalPeopleAffected: int(total),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "iterate snapshot aggregates", Err: err}
	}
	return points, nil
}

var _ service.SnapshotReader = (*pgSnapshotReader)(nil)
