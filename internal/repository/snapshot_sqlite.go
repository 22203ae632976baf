package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
)

// sqliteTimeLayout - фиксированная ширина, чтобы строки сравнивались как время
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// sqliteBatchSize ограничивает число параметров в одном INSERT
const sqliteBatchSize = 500

type SQLiteSnapshotRepository struct {
	db *sql.DB
}

func NewSQLiteSnapshotRepository(db *sql.DB) service.SnapshotRepository {
	return &SQLiteSnapshotRepository{db: db}
}

func formatSQLiteTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseSQLiteTime(s string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, s)
}

// SaveSnapshot пишет партию многострочными INSERT в одной транзакции
func (r *SQLiteSnapshotRepository) SaveSnapshot(ctx context.Context, events []models.OutageEvent, at time.Time) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &models.StorageError{Op: "begin snapshot transaction", Err: err}
	}
	defer tx.Rollback()

	ts := formatSQLiteTime(at)
	for start := 0; start < len(events); start += sqliteBatchSize {
		end := min(start+sqliteBatchSize, len(events))
		batch := events[start:end]

		placeholders := make([]string, 0, len(batch))
		args := make([]any, 0, len(batch)*len(snapshotColumns))
		for _, e := range batch {
			placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?)")
			args = append(args, ts, e.ID, e.Status, e.NumPeople, e.Lat, e.Lng)
		}

		query := fmt.Sprintf(
			"INSERT INTO outage_snapshots (%s) VALUES %s;",
			strings.Join(snapshotColumns, ", "),
			strings.Join(placeholders, ", "),
		)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return &models.StorageError{Op: "insert snapshot", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &models.StorageError{Op: "commit snapshot transaction", Err: err}
	}
	return nil
}

// ReadWindow выполняет fn в одной транзакции
func (r *SQLiteSnapshotRepository) ReadWindow(ctx context.Context, fn func(service.SnapshotReader) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &models.StorageError{Op: "begin read transaction", Err: err}
	}
	defer tx.Rollback()

	if err := fn(&sqliteSnapshotReader{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &models.StorageError{Op: "commit read transaction", Err: err}
	}
	return nil
}

func (r *SQLiteSnapshotRepository) CountRows(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM outage_snapshots;`).Scan(&count); err != nil {
		return 0, &models.StorageError{Op: "count snapshot rows", Err: err}
	}
	return count, nil
}

type sqliteSnapshotReader struct {
	tx *sql.Tx
}

func (r *sqliteSnapshotReader) DistinctSnapshotTimes(ctx context.Context, since, until time.Time) ([]time.Time, error) {
	query := `
		SELECT DISTINCT snapshot_time
		FROM outage_snapshots
		WHERE snapshot_time >= ? AND snapshot_time <= ?
		ORDER BY snapshot_time;
	`
	rows, err := r.tx.QueryContext(ctx, query, formatSQLiteTime(since), formatSQLiteTime(until))
	if err != nil {
		return nil, &models.StorageError{Op: "query snapshot times", Err: err}
	}
	defer rows.Close()

	times := make([]time.Time, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, &models.StorageError{Op: "scan snapshot time", Err: err}
		}
		t, err := parseSQLiteTime(raw)
		if err != nil {
			return nil, &models.StorageError{Op: "parse snapshot time", Err: err}
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "iterate snapshot times", Err: err}
	}
	return times, nil
}

func (r *sqliteSnapshotReader) OutageIDsAt(ctx context.Context, at time.Time) (map[string]struct{}, error) {
	rows, err := r.tx.QueryContext(ctx,
		`SELECT DISTINCT outage_id FROM outage_snapshots WHERE snapshot_time = ?;`,
		formatSQLiteTime(at),
	)
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

func (r *sqliteSnapshotReader) AggregatesSince(ctx context.Context, since, until time.Time) ([]models.TrendDataPoint, error) {
	query := `
		SELECT snapshot_time, COUNT(DISTINCT outage_id), COALESCE(SUM(num_people), 0)
		FROM outage_snapshots
		WHERE snapshot_time >= ? AND snapshot_time <= ?
		GROUP BY snapshot_time
		ORDER BY snapshot_time;
	`
	rows, err := r.tx.QueryContext(ctx, query, formatSQLiteTime(since), formatSQLiteTime(until))
	if err != nil {
		return nil, &models.StorageError{Op: "query snapshot aggregates", Err: err}
	}
	defer rows.Close()

	points := make([]models.TrendDataPoint, 0)
	for rows.Next() {
		var (
			raw            string
			outages, total int64
		)
		if err := rows.Scan(&raw, &outages, &total); err != nil {
			return nil, &models.StorageError{Op: "scan snapshot aggregate", Err: err}
		}
		t, err := parseSQLiteTime(raw)
		if err != nil {
			return nil, &models.StorageError{Op: "parse snapshot time", Err: err}
		}
		points = append(points, models.TrendDataPoint{
			Time:                t,
			TotalOutages:        int(outages),
			TotalPeopleAffected: int(total),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "iterate snapshot aggregates", Err: err}
	}
	return points, nil
}

var _ service.SnapshotReader = (*sqliteSnapshotReader)(nil)
