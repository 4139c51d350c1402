package common

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Interrupted returns a context that is canceled on the first interrupt signal.
// A second signal forces the process to exit.
func Interrupted(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	interrupt := make(chan os.Signal, 2)
	signal.Notify(interrupt,
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT,
	)
	go func() {
		defer signal.Stop(interrupt)
		for i := 0; i < 2; i++ {
			select {
			case sig := <-interrupt:
				slog.Warn("Received signal", "signal", sig, "i", i)
				if i == 0 {
					cancel()
					continue
				}
				slog.Error("Force exit")
				os.Exit(1)
			case <-parent.Done():
				return
			}
		}
	}()
	return ctx, cancel
}
