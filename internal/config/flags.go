// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the command-line configuration. Bind it to a cobra command's
// persistent flag set with [Flags.BindFlags] and pass it to
// [GetClientConfig] or [GetServerConfig] after parsing.
//
// Flags:
//
//	-d, --db               SQLite database file
//	-a, --address          report server address in format [host]:[port]
//	-c, --config           JSON config file path
//	    --auto-lock        lock the vault after this idle time (0 disables)
//	    --request-timeout  server and adapter request timeout (e.g. "30s")
//	    --log-level        log level (debug, info, warn, error)
type Flags struct {
	DSN            string
	Address        NetAddress
	ConfigPath     string
	AutoLockAfter  time.Duration
	RequestTimeout time.Duration
	LogLevel       string
	LogFile        string
}

// BindFlags registers every flag on fs.
func (f *Flags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.DSN, "db", "d", "", "SQLite database file")
	fs.VarP(&f.Address, "address", "a", "Report server address host:port")
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "JSON config file path")
	fs.DurationVar(&f.AutoLockAfter, "auto-lock", 0, "Lock the vault after this idle time (0 disables)")
	fs.DurationVar(&f.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Client log file (default: user cache dir)")
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AutoLockAfter: f.AutoLockAfter,
			LogLevel:      f.LogLevel,
			LogFile:       f.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: f.DSN},
		},
		Server: Server{
			HTTPAddress:    f.Address.String(),
			RequestTimeout: f.RequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: f.RequestTimeout,
		},
		JSONFilePath: f.ConfigPath,
	}
}

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type names the value kind in pflag usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}
