package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mlenz/regionmap/pkg/errors"
	"github.com/mlenz/regionmap/pkg/mapdef"
	"github.com/mlenz/regionmap/pkg/pipeline"
	"github.com/mlenz/regionmap/pkg/region"
	"github.com/mlenz/regionmap/pkg/session"
)

// clickOpts holds the command-line flags for the click command.
type clickOpts struct {
	mapPath    string // map definition file
	state      string // named persisted state
	valuesPath string // seed values for a fresh state (optional)
	reset      bool   // discard the stored state before clicking
}

// newClickCmd creates the click command, which applies one or more clicks to
// a named persisted state and prints the resulting values.
//
// The state is stored under the user config directory, scoped to the map's
// name, so repeated invocations continue where the last one left off.
func newClickCmd() *cobra.Command {
	var opts clickOpts

	cmd := &cobra.Command{
		Use:   "click region...",
		Short: "Apply clicks to a named persisted state",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClick(cmd.Context(), &opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.mapPath, "map", "m", "", "map definition file (TOML)")
	cmd.Flags().StringVarP(&opts.state, "state", "s", "default", "named state to apply clicks to")
	cmd.Flags().StringVar(&opts.valuesPath, "values", "", "seed values for a fresh state (JSON)")
	cmd.Flags().BoolVar(&opts.reset, "reset", false, "discard the stored state before clicking")

	return cmd
}

func runClick(ctx context.Context, opts *clickOpts, targets []string) error {
	logger := loggerFromContext(ctx)

	def, err := loadDef(opts.mapPath)
	if err != nil {
		return err
	}
	if err := errors.ValidateStateName(opts.state); err != nil {
		return err
	}
	for _, target := range targets {
		if _, ok := def.Region(target); !ok {
			return errors.New(errors.ErrCodeRegionNotFound, "unknown region: %s", target)
		}
	}

	dir, err := stateDir()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "resolve state dir")
	}
	store, err := session.NewStateStore(dir, def.Name)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "open state store")
	}

	sess, err := loadState(ctx, store, def, opts)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(def, logger)
	for _, target := range targets {
		sess.Values = runner.Click(ctx, sess.Values, target)
	}
	sess.Touch(0)
	if err := store.Save(ctx, opts.state, sess); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "save state %s", opts.state)
	}

	printSuccess("Applied %d click(s) to state %s", len(targets), StyleHighlight.Render(opts.state))
	printValues(runner, sess.Values)
	return nil
}

// loadState retrieves the named state, creating a fresh one seeded from the
// definition (or --values) when absent or --reset is set.
func loadState(ctx context.Context, store *session.StateStore, def *mapdef.Def, opts *clickOpts) (*session.Session, error) {
	if !opts.reset {
		sess, err := store.Load(ctx, opts.state)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "load state %s", opts.state)
		}
		if sess != nil {
			return sess, nil
		}
	}

	values, err := seedValues(def, opts.valuesPath)
	if err != nil {
		return nil, err
	}
	return session.New(def.Name, values, 0), nil
}

// printValues prints a value map and its mode-specific export.
func printValues(runner *pipeline.Runner, values region.ValueMap) {
	encoded, _ := json.Marshal(values)
	printDetail("values: %s", encoded)

	export, _ := json.Marshal(runner.Export(values))
	printDetail("%s value: %s", runner.Def().Mode.Name(), export)
}
