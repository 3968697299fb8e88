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
//	-d database DSN (postgres:// URI or SQLite file path)
//	-sessions-path bbolt session store file path
//	-sessions-ttl session lifetime (e.g., "24h")
//	-geocoder-url geocoding provider base URL
//	-geocoder-user-agent User-Agent sent to the geocoding provider
//	-geocoder-timeout geocoding request timeout (e.g., "15s")
//	-sweep-interval expired-session sweep interval (e.g., "10m")
//	-bcrypt-cost bcrypt work factor for password hashing
//	-request-timeout request read timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var sessionsPath string
	var sessionsTTL time.Duration
	var geocoderURL string
	var geocoderUserAgent string
	var geocoderTimeout time.Duration
	var sweepInterval time.Duration
	var bcryptCost int
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&sessionsPath, "sessions-path", "", "Session store file path")
	flag.DurationVar(&sessionsTTL, "sessions-ttl", 0, "Session lifetime (e.g., 24h)")
	flag.StringVar(&geocoderURL, "geocoder-url", "", "Geocoding provider base URL")
	flag.StringVar(&geocoderUserAgent, "geocoder-user-agent", "", "Geocoding provider User-Agent")
	flag.DurationVar(&geocoderTimeout, "geocoder-timeout", 0, "Geocoding request timeout (e.g., 15s)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired-session sweep interval (e.g., 10m)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			BcryptCost: bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Sessions: Sessions{
				Path: sessionsPath,
				TTL:  sessionsTTL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Geocoder: Geocoder{
			BaseURL:   geocoderURL,
			UserAgent: geocoderUserAgent,
			Timeout:   geocoderTimeout,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
