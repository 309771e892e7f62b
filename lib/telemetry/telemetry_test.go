package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingAPI struct {
	warnings []string
	counts   map[string]int64
}

func (r *recordingAPI) ReportBroken(id string, params ...any)  {}
func (r *recordingAPI) ReportWarning(id string, params ...any) { r.warnings = append(r.warnings, id) }
func (r *recordingAPI) ReportDebug(msg string, params ...any)  {}
func (r *recordingAPI) ReportCount(id string, count int64) {
	if r.counts == nil {
		r.counts = map[string]int64{}
	}
	r.counts[id] = count
}

func TestScopedAPI(t *testing.T) {
	inner := &recordingAPI{}
	scoped := NewScopedAPI("registry", inner)

	scoped.ReportWarning("download")
	scoped.ReportCount("parse-dropped", 3)

	require.Equal(t, []string{"registry.download"}, inner.warnings)
	require.Equal(t, int64(3), inner.counts["registry.parse-dropped"])
}

func TestDisabledTelemetryShutdown(t *testing.T) {
	var tel Telemetry
	require.False(t, tel.Enabled())
	require.NoError(t, tel.Shutdown(context.Background()))
}
