// Command funnelctl drives the funnel API from the shell: it creates
// companies, records events, runs actions, and moves companies through the
// funnel, retrying transitions that lose a race with another writer.
//
// Usage:
//
//	funnelctl --manager 7 create "Acme Ltd"
//	funnelctl --manager 7 record 12 lpr_conversation --payload '{"note":"ceo"}'
//	funnelctl --manager 7 advance 12 13 14
//	funnelctl --manager 7 advance 12 --to Null
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/glavpro/crm-stages/internal/adapters/clients/funnelapi"
	"github.com/glavpro/crm-stages/internal/platform/config"
	"github.com/glavpro/crm-stages/internal/platform/httpclient"
	"github.com/glavpro/crm-stages/internal/platform/logging"
	"github.com/glavpro/crm-stages/internal/ports"
)

const defaultTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(dialAPI, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	profile   string
	configDir string
	baseURL   string
	manager   int64
	timeout   time.Duration
}

// dialFunc builds the API client once flags are parsed.
type dialFunc func(opts *globalOptions, stderr io.Writer) (ports.FunnelClient, error)

// dialAPI loads the profile config and builds the resilient API client.
func dialAPI(opts *globalOptions, stderr io.Writer) (ports.FunnelClient, error) {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.baseURL != "" {
		cfg.Client.BaseURL = opts.baseURL
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	hc := httpclient.New(&cfg.Client, "funnel-api", nil, logger)
	return funnelapi.NewClient(hc, logger), nil
}

// cli carries the state every command runs against.
type cli struct {
	opts   globalOptions
	client ports.FunnelClient
	out    io.Writer
}

func newRootCmd(dial dialFunc, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{out: stdout}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}

	root := &cobra.Command{
		Use:           "funnelctl",
		Short:         "Move companies through the sales funnel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			client, err := dial(&c.opts, stderr)
			if err != nil {
				return err
			}
			c.client = client
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.profile, "profile", profile, "config profile (defaults to $APP_PROFILE or local)")
	flags.StringVar(&c.opts.configDir, "config-dir", "configs", "directory holding the YAML config files")
	flags.StringVar(&c.opts.baseURL, "base-url", "", "API root, overrides client.base_url")
	flags.Int64Var(&c.opts.manager, "manager", 0, "acting manager ID for writes")
	flags.DurationVar(&c.opts.timeout, "timeout", defaultTimeout, "overall deadline for the command")

	root.AddCommand(
		c.createCmd(),
		c.listEventsCmd(),
		c.cardCmd(),
		c.recordCmd(),
		c.advanceCmd(),
		c.rejectCmd(),
		c.actionCmd(),
		c.healthCmd(),
	)
	return root
}

// deadline bounds a command by the --timeout flag.
func (c *cli) deadline(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if c.opts.timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), c.opts.timeout)
}

// requireManager returns the acting manager for a write command.
func (c *cli) requireManager() (int64, error) {
	if c.opts.manager <= 0 {
		return 0, errors.New("--manager is required for this command")
	}
	return c.opts.manager, nil
}
