package main

import (
	"log/slog"
	"os"
	"time"
)

// read one sequence, apply one operation, write one record

func main() {
	t0 := time.Now()
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("bioseq", "error", err)
		os.Exit(1)
	}
	slog.Info("Done", "elapsed", time.Since(t0))
}
