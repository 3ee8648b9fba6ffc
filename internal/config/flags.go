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
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (memory, postgres://..., sqlite://...)
//	-migrate apply schema migrations at startup
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per minute per client IP
//	-server server address used by the client
//	-client-timeout client request timeout (e.g., "5s")
//	-log-level zerolog level name
//	-version application version
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var migrate bool
	var jsonConfigPath string
	var requestTimeout time.Duration
	var rateLimit int
	var adapterAddress string
	var adapterTimeout time.Duration
	var logLevel string
	var version string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.BoolVar(&migrate, "migrate", false, "Apply schema migrations at startup")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&rateLimit, "rate-limit", 0, "Requests per minute per client IP (0 disables)")
	flag.StringVar(&adapterAddress, "server", "", "Server HTTP address used by the client")
	flag.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout (e.g., 5s)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&version, "version", "", "Application version")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version:  version,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:     databaseDSN,
				Migrate: migrate,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
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

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
