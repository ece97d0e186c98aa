// Package config resolves the vdrproxy command line into a validated Config.
//
// # Flags
//
//	-g, --genesis GENESIS   ledger genesis transactions (default "genesis.txn")
//	-h, --host HOST         listen address, network mode (default "0.0.0.0")
//	-p, --port PORT         listen port, network mode
//	-s, --socket SOCKET     UNIX socket path, socket mode
//
// Every flag takes a value and may be given at most once.
//
// # Bind Target
//
// A Config always carries exactly one BindTarget:
//   - UnixSocketBind when -s is given. -h must not be given with it; -p is
//     still checked but otherwise ignored.
//   - NetworkBind otherwise. -p is then required and -h falls back to
//     DefaultHost.
//
// The default host is applied only after the bind mode is known, so it never
// conflicts with -s.
//
// # Basic Usage
//
//	cfg, err := config.Resolve(os.Args[1:])
//	if err != nil {
//		log.Fatal(err)
//	}
//	ln, err := net.Listen(cfg.Bind.Network(), cfg.Bind.Address())
//
// To bind the flags on an existing flag set, such as a cobra command:
//
//	opts := config.NewOptions()
//	opts.AddFlags(cmd.Flags())
//	// after parsing
//	cfg, err := opts.Resolve()
//
// # Error Handling
//
// Failures match one of:
//   - ErrMalformed: unknown flag, missing or hyphen-leading value, repeated
//     flag, positional argument
//   - ErrConflictingBindOptions: both host and socket given
//   - ErrMissingBindTarget: neither port nor socket given
//   - ErrInvalidPort: port is not in 0-65535; the error is a *PortError
//
// The package does no I/O. In particular the genesis path is not checked.
package config
