package service

import "time"

// SetClock подменяет источник текущего времени в сервисах трендов и снимков
func SetClock(svc any, now func() time.Time) {
	switch s := svc.(type) {
	case *trendService:
		s.now = now
	case *snapshotService:
		s.now = now
	}
}
