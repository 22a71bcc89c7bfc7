package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlenz/regionmap/pkg/errors"
	"github.com/mlenz/regionmap/pkg/host"
	"github.com/mlenz/regionmap/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	mapPath string        // map definition file
	addr    string        // listen address
	ttl     time.Duration // session lifetime
}

// newServeCmd creates the serve command, which hosts a map definition over
// HTTP. Consumers create sessions, apply clicks, and fetch rendered SVG.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr: ":8080",
		ttl:  24 * time.Hour,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host a map definition over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mapPath, "map", "m", "", "map definition file (TOML)")
	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")
	cmd.Flags().DurationVar(&opts.ttl, "session-ttl", opts.ttl, "session lifetime (0 disables expiry)")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	def, err := loadDef(opts.mapPath)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(def, logger)
	srv := host.New(runner,
		host.WithLogger(logger),
		host.WithSessionTTL(opts.ttl),
	)

	printInfo("Serving %s (%d regions, %s mode) on %s",
		StyleHighlight.Render(def.Name), len(def.Regions), def.Mode.Name(), opts.addr)

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(errors.ErrCodeInternal, err, "serve %s", opts.addr)
	}
	return nil
}
