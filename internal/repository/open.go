package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/mtallentb/nes-outage-viewer/internal/service"
	"github.com/mtallentb/nes-outage-viewer/pkg/postgres"
	"github.com/mtallentb/nes-outage-viewer/pkg/sqlite"
	"github.com/sirupsen/logrus"
)

const sqliteScheme = "sqlite://"

// OpenSnapshotRepository выбирает хранилище по схеме databaseURL, применяет миграции
// и возвращает репозиторий вместе с функцией закрытия соединения
func OpenSnapshotRepository(ctx context.Context, databaseURL string, log *logrus.Logger) (service.SnapshotRepository, func(), error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		if err := postgres.RunMigrations(databaseURL, log); err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPostgresDB(ctx, databaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Connected to PostgreSQL snapshot store")
		return NewPostgresSnapshotRepository(pool), pool.Close, nil

	case strings.HasPrefix(databaseURL, sqliteScheme):
		path := strings.TrimPrefix(databaseURL, sqliteScheme)
		if path == "" {
			return nil, nil, fmt.Errorf("sqlite database path is empty")
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.RunMigrations(db, log); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.WithField("path", path).Info("Opened SQLite snapshot store")
		return NewSQLiteSnapshotRepository(db), func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database url scheme: %q", schemeOf(databaseURL))
	}
}

func schemeOf(databaseURL string) string {
	if i := strings.Index(databaseURL, "://"); i >= 0 {
		return databaseURL[:i]
	}
	return databaseURL
}
