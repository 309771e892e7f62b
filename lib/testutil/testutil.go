package testutil

import (
	"database/sql"
	"sync"
	"testing"

	"capstone-leads/lib/sqliteutil"
)

// OpenDB opens an in-memory database with `schema` applied, it is closed
// when the test ends.
func OpenDB(t testing.TB, schema string) *sql.DB {
	db, err := sqliteutil.OpenDB(schema, sqliteutil.MemoryPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

// RecordingAPI is a telemetry.API that keeps what was reported.
type RecordingAPI struct {
	mutex    sync.Mutex
	Broken   []string
	Warnings []string
	Counts   map[string]int64
}

func (r *RecordingAPI) ReportBroken(id string, params ...any) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Broken = append(r.Broken, id)
}

func (r *RecordingAPI) ReportWarning(id string, params ...any) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Warnings = append(r.Warnings, id)
}

func (r *RecordingAPI) ReportDebug(msg string, params ...any) {}

func (r *RecordingAPI) ReportCount(id string, count int64) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.Counts == nil {
		r.Counts = map[string]int64{}
	}
	r.Counts[id] += count
}
