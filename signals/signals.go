package signals

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/btsscan/platform/connections"
	"github.com/btsscan/platform/logger"
)

// HandleAll installs the shutdown handler. On SIGINT or SIGTERM every open
// connection is closed before the process exits.
func HandleAll() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-ch
		logger.Log.Info().Str("signal", sig.String()).Msg("Shutting down")
		connections.CloseAll()
		os.Exit(0)
	}()
}
