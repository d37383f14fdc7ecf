package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
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

func flagArgs() []string {
	return os.Args[1:]
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-l upload limit, 0 for unlimited
//	-accept accept filter (e.g., "image/*,.pdf")
//	-multiple allow picking several files at once
//	-drag enable drag and drop
//	-max-file-size largest accepted file in bytes
//	-fetch-timeout timeout of a single default fetch
//	-local-root directory file:// defaults are confined to
//	-session-ttl idle time before a session is swept
//	-defaults default descriptors as name=url,name=url
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout, fetchTimeout, sessionTTL time.Duration
	var limit int
	var accept, localRoot string
	var multiple, drag bool
	var maxFileSize int64
	var defaults Descriptors

	fs := flag.NewFlagSet("stager", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&limit, "l", 0, "Upload limit, 0 for unlimited")
	fs.StringVar(&accept, "accept", "", "Accept filter (e.g., image/*,.pdf)")
	fs.BoolVar(&multiple, "multiple", false, "Allow picking several files at once")
	fs.BoolVar(&drag, "drag", false, "Enable drag and drop")
	fs.Int64Var(&maxFileSize, "max-file-size", 0, "Largest accepted file in bytes")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Timeout of a single default fetch")
	fs.StringVar(&localRoot, "local-root", "", "Directory file:// defaults are confined to")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Idle time before a session is swept")
	fs.TextVar(&defaults, "defaults", Descriptors(nil), "Default descriptors as name=url,name=url")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Staging: Staging{
			Limit:       limit,
			Accept:      accept,
			Multiple:    multiple,
			Drag:        drag,
			MaxFileSize: maxFileSize,
		},
		Fetcher: Fetcher{
			Timeout:   fetchTimeout,
			LocalRoot: localRoot,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionTTL: sessionTTL,
		},
		Defaults:     defaults,
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
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
