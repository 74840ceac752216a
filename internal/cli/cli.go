// Package cli implements the privacy command line.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/benx421/privacy-go/client"
	"github.com/benx421/privacy-go/internal/config"
	"github.com/benx421/privacy-go/models"
)

// Exit codes returned by Run
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const usage = `usage: privacy [global flags] <command> [flags]

commands:
  cards                 list cards
  transactions          list transactions
  create-card           create a card
  update-card           update a card
  simulate authorize    simulate an authorization (sandbox only)
  simulate void         simulate a void (sandbox only)
  simulate clearing     simulate a clearing (sandbox only)
  simulate return       simulate a return (sandbox only)

global flags:
`

var errUsage = errors.New("usage error")

type command struct {
	client *client.Client
	stdout io.Writer
	stderr io.Writer
	raw    bool
}

// Run executes the command line in args (without the program name) and
// returns the process exit code. cfg supplies defaults for the global flags.
func Run(ctx context.Context, cfg config.ClientConfig, logger *slog.Logger, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("privacy", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() {
		fmt.Fprint(stderr, usage)
		global.PrintDefaults()
	}
	global.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "API key (default from PRIVACY_API_KEY)")
	global.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "API base URL")
	global.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP timeout")
	raw := global.Bool("raw", false, "print the raw JSON document instead of a table")

	if err := global.Parse(args); err != nil {
		return ExitUsage
	}
	if global.NArg() == 0 {
		global.Usage()
		return ExitUsage
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}

	c, err := client.New(cfg.APIKey, cfg.BaseURL,
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		client.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}

	cmd := &command{client: c, stdout: stdout, stderr: stderr, raw: *raw}
	err = cmd.dispatch(ctx, global.Arg(0), global.Args()[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return ExitUsage
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}
}

func (c *command) dispatch(ctx context.Context, name string, args []string) error {
	switch name {
	case "cards":
		return c.listCards(ctx, args)
	case "transactions":
		return c.listTransactions(ctx, args)
	case "create-card":
		return c.createCard(ctx, args)
	case "update-card":
		return c.updateCard(ctx, args)
	case "simulate":
		if len(args) == 0 {
			fmt.Fprintln(c.stderr, "simulate requires one of: authorize, void, clearing, return")
			return errUsage
		}
		return c.simulate(ctx, args[0], args[1:])
	default:
		fmt.Fprintf(c.stderr, "unknown command %q\n\n%s", name, usage)
		return errUsage
	}
}

func (c *command) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// explicitFlags returns the names of the flags given on the command line
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

func optional[T any](set map[string]bool, name string, value T) *T {
	if !set[name] {
		return nil
	}
	return client.Ptr(value)
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return errUsage
	}
	return nil
}

func required(fs *flag.FlagSet, set map[string]bool, names ...string) error {
	for _, name := range names {
		if !set[name] {
			fmt.Fprintf(fs.Output(), "flag -%s is required\n", name)
			return errUsage
		}
	}
	return nil
}

func (c *command) printRaw(doc models.Document) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	_, err = fmt.Fprintln(c.stdout, string(out))
	return err
}
