// Package config turns vdrproxy command-line arguments into a Config.
// It applies defaults and enforces the constraints between the host, port
// and socket options so that callers always receive exactly one bind target.
package config

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultGenesis is the genesis transactions path used when -g is absent.
	DefaultGenesis = "genesis.txn"
	// DefaultHost is the listen address used in network mode when -h is absent.
	DefaultHost = "0.0.0.0"
)

// Config is the resolved proxy configuration.
// It is built once per invocation and must not be modified afterwards.
type Config struct {
	Genesis string
	Bind    BindTarget
}

// BindTarget is where the proxy listens. It is implemented only by
// NetworkBind and UnixSocketBind.
type BindTarget interface {
	// Network returns the network name accepted by net.Listen.
	Network() string
	// Address returns the address accepted by net.Listen.
	Address() string

	bindTarget()
}

// NetworkBind is a TCP host/port pair.
type NetworkBind struct {
	Host string `yaml:"host"`
	Port uint16 `yaml:"port"`
}

// UnixSocketBind is a local UNIX domain socket path.
type UnixSocketBind struct {
	Path string `yaml:"path"`
}

var (
	_ BindTarget = NetworkBind{}
	_ BindTarget = UnixSocketBind{}

	_ yaml.Marshaler = Config{}
)

func (NetworkBind) Network() string { return "tcp" }

func (b NetworkBind) Address() string {
	return net.JoinHostPort(b.Host, strconv.FormatUint(uint64(b.Port), 10))
}

func (NetworkBind) bindTarget() {}

func (UnixSocketBind) Network() string { return "unix" }

func (b UnixSocketBind) Address() string { return b.Path }

func (UnixSocketBind) bindTarget() {}

// MarshalYAML renders the bind target under a "network" or "unix" key,
// never both.
func (c Config) MarshalYAML() (any, error) {
	out := struct {
		Genesis string          `yaml:"genesis"`
		Network *NetworkBind    `yaml:"network,omitempty"`
		Unix    *UnixSocketBind `yaml:"unix,omitempty"`
	}{Genesis: c.Genesis}

	switch b := c.Bind.(type) {
	case NetworkBind:
		out.Network = &b
	case UnixSocketBind:
		out.Unix = &b
	default:
		return nil, fmt.Errorf("unsupported bind target %T", c.Bind)
	}
	return out, nil
}

// Options holds the raw option values collected from the command line.
// A zero Options is not usable; create one with NewOptions.
type Options struct {
	genesis *option
	host    *option
	port    *option
	socket  *option
}

// NewOptions returns an empty option table.
func NewOptions() *Options {
	return &Options{
		genesis: &option{def: DefaultGenesis},
		host:    &option{def: DefaultHost},
		port:    &option{},
		socket:  &option{},
	}
}

// AddFlags registers the -g, -h, -p and -s flags on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.VarP(o.genesis, "genesis", "g", "Path to the ledger `GENESIS` transactions")
	fs.VarP(o.host, "host", "h", "Set the local `HOST` address to listen on")
	fs.VarP(o.port, "port", "p", "Sets the local `PORT` to listen on")
	fs.VarP(o.socket, "socket", "s", "Sets the UNIX `SOCKET` path to listen on")
}

// Resolve parses args (without the program name) and returns the
// resulting Config.
func Resolve(args []string) (Config, error) {
	opts := NewOptions()

	fs := pflag.NewFlagSet("vdrproxy", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	opts.AddFlags(fs)

	if err := fs.Parse(args); err != nil {
		return Config{}, Malformed(err)
	}
	if fs.NArg() > 0 {
		return Config{}, Malformed(UnexpectedArgsError(fs.Args()))
	}
	return opts.Resolve()
}

// Resolve validates the collected option values and builds the Config.
// It expects the flags registered by AddFlags to have been parsed.
func (o *Options) Resolve() (Config, error) {
	// host only counts when given explicitly; its default must not
	// make a socket configuration look conflicting.
	if o.socket.set {
		if o.host.set {
			return Config{}, ErrConflictingBindOptions
		}
	} else if !o.port.set {
		return Config{}, ErrMissingBindTarget
	}

	var port uint16
	if o.port.set {
		// One leading '+' is allowed, as in "+8080".
		n, err := strconv.ParseUint(strings.TrimPrefix(o.port.value, "+"), 10, 16)
		if err != nil {
			return Config{}, &PortError{Value: o.port.value, Err: err}
		}
		port = uint16(n)
	}

	cfg := Config{Genesis: o.genesis.String()}
	if o.socket.set {
		cfg.Bind = UnixSocketBind{Path: o.socket.value}
	} else {
		cfg.Bind = NetworkBind{Host: o.host.String(), Port: port}
	}
	return cfg, nil
}

// option is a string flag value that remembers whether it was given.
// An explicit empty string is still an occurrence.
type option struct {
	value string
	set   bool
	def   string
}

var _ pflag.Value = (*option)(nil)

// String returns the explicit value, or the default when absent.
func (o *option) String() string {
	if o.set {
		return o.value
	}
	return o.def
}

// Set rejects a second occurrence and values that look like another flag,
// so "-p -s x" fails to parse instead of taking "-s" as the port.
func (o *option) Set(s string) error {
	if o.set {
		return errRepeated
	}
	if len(s) > 1 && s[0] == '-' {
		return errHyphenValue
	}
	o.value = s
	o.set = true
	return nil
}

func (o *option) Type() string { return "string" }
