package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthWorker periodically logs process-level metrics. It is purely
// observational; nothing reads its output at runtime.
type HealthWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
}

func NewHealthWorker(log *slog.Logger, metricInterval time.Duration) *HealthWorker {
	return &HealthWorker{log: log, metricInterval: metricInterval}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health worker")
			return nil
		case <-ticker.C:
			w.report(proc)
		}
	}
}

func (w *HealthWorker) report(proc *process.Process) {
	memInfo, err := proc.MemoryInfo()
	if err != nil {
		w.log.Debug("Memory metric unavailable", "error", err)
		return
	}
	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		w.log.Debug("CPU metric unavailable", "error", err)
		return
	}
	w.log.Info("Process health",
		"rss_mb", memInfo.RSS/(1024*1024),
		"cpu_percent", cpuPercent,
		"goroutines", runtime.NumGoroutine())
}
