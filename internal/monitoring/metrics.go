package monitoring

import (
	"database/sql"
	"runtime"
	"time"
)

// Service holds runtime context for monitoring and reporting.
type Service struct {
	db        *sql.DB
	startedAt time.Time
}

type Snapshot struct {
	TimestampUTC       string `json:"timestamp_utc"`
	UptimeSeconds      int64  `json:"uptime_seconds"`
	HTTPActiveRequests int64  `json:"http_active_requests"`
	HTTPTotalRequests  uint64 `json:"http_total_requests"`
	DBOpenConnections  int    `json:"db_open_connections"`
	DBInUseConnections int    `json:"db_in_use_connections"`
	DBWaitCount        int64  `json:"db_wait_count"`
	Goroutines         int    `json:"goroutines"`
	GoMemoryAllocBytes uint64 `json:"go_memory_alloc_bytes"`
	GoMemorySysBytes   uint64 `json:"go_memory_sys_bytes"`
	GoHeapInUseBytes   uint64 `json:"go_heap_in_use_bytes"`
	GoGCCount          uint32 `json:"go_gc_count"`
	UsersTotal         int64  `json:"users_total"`
	BlogsTotal         int64  `json:"blogs_total"`
	DBSizeBytes        int64  `json:"db_size_bytes"`
}

func NewService(db *sql.DB, startedAt time.Time) *Service {
	return &Service{db: db, startedAt: startedAt}
}

// Snapshot collects a point-in-time operational report. Row-count queries
// are best effort and leave zeroes on failure.
func (s *Service) Snapshot() Snapshot {
	stats := s.db.Stats()
	activeHTTP, totalHTTP := getHTTPStats()

	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	snap := Snapshot{
		TimestampUTC:       time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:      int64(time.Since(s.startedAt).Seconds()),
		HTTPActiveRequests: activeHTTP,
		HTTPTotalRequests:  totalHTTP,
		DBOpenConnections:  stats.OpenConnections,
		DBInUseConnections: stats.InUse,
		DBWaitCount:        int64(stats.WaitCount),
		Goroutines:         runtime.NumGoroutine(),
		GoMemoryAllocBytes: memory.Alloc,
		GoMemorySysBytes:   memory.Sys,
		GoHeapInUseBytes:   memory.HeapInuse,
		GoGCCount:          memory.NumGC,
	}

	_ = s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&snap.UsersTotal)
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM blogs`).Scan(&snap.BlogsTotal)
	_ = s.db.QueryRow(`SELECT COALESCE(pg_database_size(current_database()), 0)`).Scan(&snap.DBSizeBytes)

	return snap
}

// DBState reports "ok" or the ping error text.
func (s *Service) DBState() string {
	if err := s.db.Ping(); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}
