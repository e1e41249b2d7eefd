package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (SQLite file path)
//	-p identity provider base URL
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-probe-interval readiness probe interval (e.g., "2s")
//	-token-secret token signing secret
//	-token-ttl token time to live (e.g., "1h", "30m")
func ParseFlags() *StructuredConfig {
	return parseFlagSet(os.Args[1:])
}

func parseFlagSet(args []string) *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var providerBaseURL string
	var requestTimeout time.Duration
	var probeInterval time.Duration
	var tokenSecret string
	var tokenTTL time.Duration

	fs := flag.NewFlagSet("signon", flag.ContinueOnError)
	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&providerBaseURL, "p", "", "Identity provider base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Readiness probe interval (e.g., 2s)")
	fs.StringVar(&tokenSecret, "token-secret", "", "Token signing secret")
	fs.DurationVar(&tokenTTL, "token-ttl", 0, "Token TTL (e.g., 1h, 30m)")

	// Unknown flags are not fatal; whatever parsed before the error still
	// applies and the remaining sources fill the gaps.
	_ = fs.Parse(args)

	return &StructuredConfig{
		Provider: Provider{
			BaseURL:        providerBaseURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			Address:     serverAddress,
			TokenSecret: tokenSecret,
			TokenTTL:    tokenTTL,
		},
		Storage: Storage{
			DSN: databaseDSN,
		},
		Workers: Workers{
			ProbeInterval: probeInterval,
		},
	}
}
