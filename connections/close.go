package connections

import (
	"context"
	"time"

	"github.com/btsscan/platform/logger"
)

// closeWithTimeout executes a close function with a 3-second timeout.
func closeWithTimeout(name string, closeFn func() error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- closeFn()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Log.Warn().Err(err).Str("connection", name).Msg("Error closing connection")
		} else {
			logger.Log.Info().Str("connection", name).Msg("Connection closed")
		}
	case <-ctx.Done():
		logger.Log.Warn().Str("connection", name).Msg("Timeout closing connection")
	}
}

func CloseNodeClient() {
	closeWithTimeout("node client", func() error {
		if Node != nil {
			return Node.Close()
		}
		return nil
	})
}

func CloseAll() {
	logger.Log.Info().Msg("Closing all connections")
	CloseNodeClient()
}
