package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-api-address mock backend base address used by the agent
//	-d key-value database path (SQLite file)
//	-blob-dir blob side-car directory
//	-c/-config json file path with configs
//	-track start background tracking immediately
//	-simulate use the simulated location feed
//	-min-fix-interval debounce window between accepted fixes (e.g., "5m")
//	-max-accuracy discard fixes with accuracy radius at or above this value
//	-poll-interval one-shot location request period (e.g., "5m")
//	-max-clip-duration hard cap for one voice recording (e.g., "30s")
//	-feed-interval simulated feed tick period
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var apiAddress string
	var databaseDSN string
	var blobDir string
	var jsonConfigPath string
	var trackOnStart bool
	var simulate bool
	var minFixInterval time.Duration
	var maxAccuracy float64
	var pollInterval time.Duration
	var maxClipDuration time.Duration
	var feedInterval time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&apiAddress, "api-address", "", "Mock backend base address")
	flag.StringVar(&databaseDSN, "d", "", "Key-value database path")
	flag.StringVar(&blobDir, "blob-dir", "", "Blob side-car directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.BoolVar(&trackOnStart, "track", false, "Start background tracking immediately")
	flag.BoolVar(&simulate, "simulate", false, "Use the simulated location feed")
	flag.DurationVar(&minFixInterval, "min-fix-interval", 0, "Debounce window between accepted fixes (e.g., 5m)")
	flag.Float64Var(&maxAccuracy, "max-accuracy", 0, "Discard fixes with accuracy radius at or above this value")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "One-shot location request period (e.g., 5m)")
	flag.DurationVar(&maxClipDuration, "max-clip-duration", 0, "Hard cap for one voice recording (e.g., 30s)")
	flag.DurationVar(&feedInterval, "feed-interval", 0, "Simulated feed tick period")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TrackOnStart: trackOnStart,
			Simulate:     simulate,
		},
		Sampler: Sampler{
			MinFixInterval: minFixInterval,
			MaxAccuracy:    maxAccuracy,
			PollInterval:   pollInterval,
		},
		Capture: Capture{
			MaxClipDuration: maxClipDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				BlobDir: blobDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			FeedInterval: feedInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// config merge treats the value as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
