// Command vdrproxy resolves the listen configuration of the Indy VDR proxy.
//
// It validates the command line and writes the resolved configuration to
// stdout as YAML for the process that starts the proxy server.
//
// Usage:
//
//	vdrproxy [-g GENESIS] (-p PORT [-h HOST] | -s SOCKET)
//
// Examples:
//
//	vdrproxy -p 8080                   - listen on 0.0.0.0:8080
//	vdrproxy -h 127.0.0.1 -p 8080      - listen on 127.0.0.1:8080
//	vdrproxy -s /run/vdr.sock          - listen on a UNIX socket
//	vdrproxy -g pool.txn -s /run/vdr.sock
//
// Exit status is 0 on success, 2 for unparseable arguments and 1 for any
// other configuration error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lc/vdrproxy/internal/buildinfo"
	"github.com/lc/vdrproxy/internal/config"
	"github.com/lc/vdrproxy/internal/log"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	defer func() { _ = log.Sync() }()

	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		reportError(stderr, err)
		return exitCode(err)
	}
	return exitOK
}

func newRootCommand() *cobra.Command {
	opts := config.NewOptions()

	root := &cobra.Command{
		Use:   buildinfo.Name,
		Short: "Proxy requests to a Hyperledger Indy ledger",
		Long: `Proxy requests to a Hyperledger Indy ledger.

This command resolves where the proxy listens. Either a TCP port (-p,
optionally with -h) or a UNIX socket (-s) must be given. -h and -s cannot
be combined. The resolved configuration is written to stdout as YAML.`,
		Example: `  vdrproxy -p 8080
  vdrproxy -h 127.0.0.1 -p 8080
  vdrproxy -g pool.txn -s /run/vdr.sock`,
		Version:       buildinfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return config.Malformed(config.UnexpectedArgsError(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.Resolve()
			if err != nil {
				return err
			}
			log.Info("configuration resolved",
				"genesis", cfg.Genesis,
				"network", cfg.Bind.Network(),
				"address", cfg.Bind.Address(),
			)
			return writeConfig(cmd.OutOrStdout(), cfg)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return config.Malformed(err)
	})
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (commit %s)\n", buildinfo.Commit))

	flags := root.Flags()
	flags.SortFlags = false
	opts.AddFlags(flags)
	// -h is taken by --host; declaring help here stops cobra from
	// claiming the shorthand for it.
	flags.Bool("help", false, "Print help information")
	flags.BoolP("version", "V", false, "Print version information")

	return root
}

func writeConfig(w io.Writer, cfg config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	return enc.Close()
}

func reportError(w io.Writer, err error) {
	log.Debug("configuration rejected", "error", err)

	color.New(color.FgHiRed, color.Bold).Fprint(w, "error: ")
	fmt.Fprintln(w, err)

	var pe *config.PortError
	if errors.As(err, &pe) {
		fmt.Fprintf(w, "  port value: %q\n", pe.Value)
	}
	if errors.Is(err, config.ErrMalformed) {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", buildinfo.Name)
	}
}

func exitCode(err error) int {
	if errors.Is(err, config.ErrMalformed) {
		return exitUsage
	}
	return exitError
}
