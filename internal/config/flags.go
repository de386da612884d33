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
//	-a host boundary address in format [host]:[port] (host and launcher)
//	-d database DSN
//	-f state file path
//	-names legacy names file path
//	-v visualizations directory
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1m")
//	-request-timeout request timeout (e.g., "10s")
//	-browser browser executable path
//	-windowed open visualizations in a regular window
func ParseFlags() *StructuredConfig {
	var address NetAddress
	var databaseDSN string
	var stateFile string
	var legacyNamesFile string
	var visualizationsDir string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var browserPath string
	var windowed bool

	flag.Var(&address, "a", "Host boundary address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&stateFile, "f", "", "State file path")
	flag.StringVar(&legacyNamesFile, "names", "", "Legacy names file path")
	flag.StringVar(&visualizationsDir, "v", "", "Visualizations directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	flag.StringVar(&browserPath, "browser", "", "Browser executable path")
	flag.BoolVar(&windowed, "windowed", false, "Open visualizations in a regular window")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				StateFile:       stateFile,
				LegacyNamesFile: legacyNamesFile,
			},
		},
		Server: Server{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
		},
		Visualizations: Visualizations{Dir: visualizationsDir},
		Window: Window{
			BrowserPath: browserPath,
			Windowed:    windowed,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
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
