package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func EnvLoad(filenames ...string) {
	if len(filenames) == 0 {
		filenames = append(filenames, ".env")
	}
	for _, filename := range filenames {
		log.Printf("Loading configuration file: %s", filename)
		err := godotenv.Load(filename)
		if err != nil {
			log.Fatalf("Error loading configuration file: %s", filename)
		}
	}
}

/*
* Service settings
 */

// Get HTTP server hostname
func EnvServerHost() string {
	return os.Getenv("SERVER_HOST")
}

// Get HTTP server port
func EnvServerPort() string {
	return os.Getenv("SERVER_PORT")
}

// Get default log level
func EnvLogLevel() string {
	return os.Getenv("LOG_LEVEL")
}

// Get log file path
func EnvLogFilePath() string {
	return os.Getenv("LOG_FILE_PATH")
}

// Get log file enabled flag
func EnvLogFileEnabled() bool {
	return os.Getenv("LOG_FILE_ENABLED") == "true"
}

// Get log file max size in MB
func EnvLogFileMaxSize() int {
	if v, err := strconv.Atoi(os.Getenv("LOG_FILE_MAX_SIZE_MB")); err == nil && v > 0 {
		return v
	}
	return 100 // default 100MB
}

// Get log file max backups
func EnvLogFileMaxBackups() int {
	if v, err := strconv.Atoi(os.Getenv("LOG_FILE_MAX_BACKUPS")); err == nil && v >= 0 {
		return v
	}
	return 3 // default 3 backups
}

// Get log file max age in days
func EnvLogFileMaxAge() int {
	if v, err := strconv.Atoi(os.Getenv("LOG_FILE_MAX_AGE_DAYS")); err == nil && v > 0 {
		return v
	}
	return 7 // default 7 days
}

/*
* Bitshares node settings
 */

func EnvNodeWebsocketURL() string {
	v := os.Getenv("NODE_WEBSOCKET_URL")
	if v == "" {
		return "wss://node.xbts.io/ws"
	}
	return v
}

// Fallback node used when the primary keeps failing
func EnvNodeWebsocketFallbackURL() string {
	return os.Getenv("NODE_WEBSOCKET_FALLBACK_URL")
}

// Network name: "mainnet" (default) or "testnet". Testnet nodes reject large
// lookup_asset_symbols payloads, so the asset resolver shrinks its chunks there.
func EnvNetwork() string {
	v := os.Getenv("NETWORK")
	if v == "" {
		return "mainnet"
	}
	return v
}

func EnvNetworkIsTestnet() bool {
	return EnvNetwork() == "testnet"
}

// Per-request RPC timeout in seconds for node calls
func EnvNodeRequestTimeoutSec() int {
	if v, err := strconv.Atoi(os.Getenv("NODE_REQUEST_TIMEOUT_SEC")); err == nil && v > 0 {
		return v
	}
	return 30 // default 30s
}

/*
* Fee display settings
 */

// Share of an operation fee returned through the referral program, in percent.
// The remainder is the network fee. Business rule of the referral program, not
// a chain constant, so it stays configurable.
func EnvReferralRebatePercent() int {
	if v, err := strconv.Atoi(os.Getenv("REFERRAL_REBATE_PERCENT")); err == nil && v >= 0 && v <= 100 {
		return v
	}
	return 80 // default 80%
}
