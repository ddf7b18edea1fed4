package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/gridpath/internal/config"
	"github.com/Faultbox/gridpath/internal/logger"
	"github.com/Faultbox/gridpath/internal/render"
	"github.com/Faultbox/gridpath/internal/scenario"
	"github.com/Faultbox/gridpath/pkg/pathfind"
)

// errNoPath reports that at least one search ended without a path.
var errNoPath = errors.New("no path found")

// app holds state shared by all subcommands.
type app struct {
	cfgPath   string
	overrides config.Overrides

	cfg *config.Config
	log *zap.Logger

	stdout, stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "pathfind",
		Short: "Shortest orthogonal paths on grid maps",
		Long: `pathfind runs A* searches on tile maps.

Maps are text files with one character per tile ('X' wall, 'S' start,
'G' goal, anything else free) or binary .gat walkability tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "config file (default ./pathfind.yaml)")
	flags.BoolVar(&a.overrides.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&a.overrides.NoColor, "no-color", false, "disable colored output")
	flags.BoolVar(&a.overrides.Verify, "verify", false, "validate every returned path")
	flags.IntVar(&a.overrides.Workers, "workers", 0, "concurrent searches in batch mode")
	flags.StringVar(&a.overrides.LogFile, "log-file", "", "also write logs to this file")

	root.AddCommand(
		newSolveCmd(a),
		newBatchCmd(a),
		newWatchCmd(a),
		newConvertCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath, a.overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := logger.Options{
		Level:   cfg.Logging.Level,
		Console: a.stderr,
		Color:   cfg.Render.Color,
	}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	a.log = logger.New(opts)
	logger.SetGlobal(a.log)

	logger.Sugar.Debugf("config: %+v", *cfg)
	return nil
}

func (a *app) finder() *pathfind.PathFinder {
	return pathfind.New(pathfind.WithLogger(a.log))
}

func (a *app) textSink() *render.TextSink {
	return render.NewText(a.stdout, render.Options{
		Color:     a.cfg.Render.Color,
		PathGlyph: []rune(a.cfg.Render.PathGlyph)[0],
		ShowStats: a.cfg.Render.ShowStats,
	})
}

func (a *app) sink() render.Sink {
	return render.Tee(a.textSink(), render.NewLog(a.log))
}

// endpointFlags registers --start/--goal on cmd.
func endpointFlags(cmd *cobra.Command, start, goal *string) {
	cmd.Flags().StringVar(start, "start", "", "start tile as x,y (overrides the 'S' marker)")
	cmd.Flags().StringVar(goal, "goal", "", "goal tile as x,y (overrides the 'G' marker)")
}

func parseEndpoints(start, goal string) (scenario.Endpoints, error) {
	var ep scenario.Endpoints
	if start != "" {
		p, err := pathfind.ParsePoint(start)
		if err != nil {
			return ep, err
		}
		ep.Start = &p
	}
	if goal != "" {
		p, err := pathfind.ParsePoint(goal)
		if err != nil {
			return ep, err
		}
		ep.Goal = &p
	}
	return ep, nil
}
