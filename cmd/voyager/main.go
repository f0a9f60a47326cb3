// Command voyager parses and plans trips from the command line using the
// same catalog and cost tables as the HTTP service.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voyager/internal/catalog"
	"voyager/internal/nlu"
	"voyager/internal/planner"
)

type options struct {
	catalogFile string
	tablesFile  string
	today       string
	verbose     bool
}

// env is what every subcommand needs, built once per invocation.
type env struct {
	out     io.Writer
	log     *zap.Logger
	parser  *nlu.Parser
	planner *planner.Planner
}

func (o *options) env(out io.Writer) (*env, error) {
	log := zap.NewNop()
	if o.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		log = l
	}

	now := time.Now
	if o.today != "" {
		d, err := nlu.ParseDate(o.today)
		if err != nil {
			return nil, fmt.Errorf("--today: %w", err)
		}
		now = func() time.Time { return d.Time }
	}

	snap := catalog.Default()
	if o.catalogFile != "" {
		s, err := catalog.LoadFile(o.catalogFile)
		if err != nil {
			return nil, err
		}
		snap = s
	}
	log.Debug("Catalog loaded", zap.Int("cities", len(snap.Cities())), zap.Int("pois", snap.Size()))

	tables, err := planner.LoadTables(o.tablesFile)
	if err != nil {
		return nil, err
	}
	p, err := planner.New(snap, tables, planner.WithClock(now))
	if err != nil {
		return nil, err
	}
	return &env{out: out, log: log, parser: nlu.NewParser(now), planner: p}, nil
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "voyager",
		Short:         "Plan trips from plain-language requests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.catalogFile, "catalog", os.Getenv("CATALOG_FILE"), "POI catalog file (.json or .yaml)")
	flags.StringVar(&opts.tablesFile, "tables", os.Getenv("PLANNER_TABLES_FILE"), "cost table overrides (.toml)")
	flags.StringVar(&opts.today, "today", "", "date to plan from when only a duration is given (YYYY-MM-DD)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(newParseCmd(opts), newPlanCmd(opts), newExportCmd(opts))
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
