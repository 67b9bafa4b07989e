package connections

import (
	"context"
	"time"

	"github.com/btsscan/platform/logger"
)

// MonitorNodeConnection periodically pings the node client. If the ping
// fails, the connection is torn down and redialed.
func MonitorNodeConnection() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		client := Node
		if client == nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := client.EnsureConnection(ctx)
		if err == nil {
			err = client.Ping(ctx)
		}
		cancel()

		if err != nil {
			logger.Log.Warn().Err(err).Msg("Node ping failed; reconnecting")
			client.Close()
		}
	}
}
