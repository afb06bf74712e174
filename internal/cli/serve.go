package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/internal/server"
	"github.com/matzehuels/chartgeom/pkg/observability"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	maxBody int64
	timeout time.Duration
	noCache bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:    "localhost:8080",
		maxBody: server.DefaultMaxBody,
		timeout: server.DefaultRequestTimeout,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve chart renders over HTTP",
		Long: `Start an HTTP server that renders posted chart documents.

  POST /render?format=svg   body: chart document (JSON, or TOML with a toml Content-Type)
  GET  /shapes              registered shape names
  GET  /healthz             liveness

Documents must carry their data inline. Set --redis-url to share the
artifact cache between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))
			srv := server.New(runner,
				server.WithLogger(c.Logger),
				server.WithMaxBody(opts.maxBody),
				server.WithTimeout(opts.timeout),
			)
			printSuccess("Listening on %s", StyleLink.Render("http://"+opts.addr))
			return srv.ListenAndServe(ctx, opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "maximum request body in bytes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request timeout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
