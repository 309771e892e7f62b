package serviceutil

import (
	"context"
	"log/slog"
	"path"
	"time"

	"capstone-leads/lib/restyutil"
	"capstone-leads/lib/telemetry"
)

// InitTelemetry sets up logging and, when a telemetry.json5 is found,
// otel exporters for the duration of a run. The returned function flushes
// the exporters and must be called before the process exits.
func InitTelemetry(ctx context.Context, serviceName string, verbose bool) func() {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, serviceName)
	if err != nil {
		Fatal("setup telemetry", err)
	}
	if !tel.Enabled() {
		return func() {}
	}

	perfCtx, stopPerf := context.WithCancel(ctx)
	telemetry.InstrumentPerfStats(perfCtx, 5*time.Second)

	return func() {
		stopPerf()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := tel.Shutdown(shutdownCtx)
		if err != nil {
			slog.Warn("failed to flush telemetry", "err", err)
		}
	}
}

// RestyDump returns where the exchanges of the client `name` are written
// when verbose, nil otherwise.
func RestyDump(verbose bool, name string) restyutil.InstrumentOutput {
	if !verbose {
		return nil
	}
	out, err := restyutil.NewFilesystemOutput(path.Join("<dev_state>", "resty", name))
	if err != nil {
		slog.Warn("http exchanges will not be written", "client", name, "err", err)
		return nil
	}
	return out
}
