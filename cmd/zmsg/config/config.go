package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/blocknative/zmsg/rpc"
	"golang.org/x/exp/slices"
)

const (
	PortMainnet = 8232
	PortTestnet = 18232

	DefaultNetwork    = "testnet"
	DefaultRPCConnect = "localhost"
)

var (
	ErrMissingPassword = fmt.Errorf("%w: rpcpassword missing from configuration", rpc.ErrMissingPassword)
	ErrUnknownNetwork  = errors.New("unknown network, use mainnet or testnet")
)

var networkPorts = map[string]int{
	"main":    PortMainnet,
	"mainnet": PortMainnet,
	"test":    PortTestnet,
	"testnet": PortTestnet,
}

// Networks lists the accepted network names.
func Networks() []string {
	names := make([]string, 0, len(networkPorts))
	for name := range networkPorts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Config holds the node credentials read from zcash.conf.
type Config struct {
	RPCUser     string `config:"rpcuser"`
	RPCPassword string `config:"rpcpassword"`
	RPCConnect  string `config:"rpcconnect"`
	RPCPort     int    `config:"rpcport"`

	seen map[string]bool
}

type Source interface {
	Load(*Config) error
}

func NewConfig() *Config {
	return &Config{
		RPCConnect: DefaultRPCConnect,
		seen:       make(map[string]bool),
	}
}

// Load reads s and fills in the port of network when the file has none.
func Load(s Source, network string) (*Config, error) {
	c := NewConfig()
	if err := s.Load(c); err != nil {
		return nil, err
	}
	if err := c.LoadNetwork(network); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

func (c *Config) LoadNetwork(network string) error {
	port, ok := networkPorts[network]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
	if !c.IsSet("rpcport") {
		c.RPCPort = port
	}
	return nil
}

// Set assigns the field tagged key. Keys the client does not use are
// ignored, zcash.conf carries many of them.
func (c *Config) Set(key, value string) error {
	elem := reflect.ValueOf(c).Elem()
	t := elem.Type()

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if name, ok := f.Tag.Lookup("config"); !ok || name != key {
			continue
		}

		el := elem.Field(i)
		switch f.Type.Kind() {
		case reflect.String:
			el.SetString(value)
		case reflect.Int:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			el.SetInt(n)
		default:
			return fmt.Errorf("%s: unsupported type %s", key, f.Type)
		}

		if c.seen == nil {
			c.seen = make(map[string]bool)
		}
		c.seen[key] = true
		return nil
	}
	return nil
}

// IsSet reports whether the configuration assigned key, even to an empty
// value.
func (c *Config) IsSet(key string) bool {
	return c.seen[key]
}

// Validate requires rpcpassword to be present. An empty password is allowed.
func (c *Config) Validate() error {
	if !c.IsSet("rpcpassword") {
		return ErrMissingPassword
	}
	if c.RPCPort <= 0 || c.RPCPort > 65535 {
		return fmt.Errorf("%w: rpcport %d", rpc.ErrInvalidEndpoint, c.RPCPort)
	}
	return nil
}

func (c *Config) Endpoint() rpc.Endpoint {
	return rpc.Endpoint{
		Scheme:   "http",
		Host:     c.RPCConnect,
		Port:     c.RPCPort,
		Username: c.RPCUser,
		Password: c.RPCPassword,
	}
}

func (c *Config) Loggable() map[string]any {
	return map[string]any{
		"rpcuser":    c.RPCUser,
		"rpcconnect": c.RPCConnect,
		"rpcport":    c.RPCPort,
	}
}

// DefaultPath is where zcashd keeps its configuration.
func DefaultPath() (string, error) {
	if runtime.GOOS == "windows" {
		appdata := os.Getenv("APPDATA")
		if appdata == "" {
			return "", errors.New("APPDATA is not set")
		}
		return filepath.Join(appdata, "Zcash", "zcash.conf"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".zcash", "zcash.conf"), nil
}

// ExpandPath resolves a leading ~ to the home directory.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
