package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/metailurini/skipset"
)

type statsOptions struct {
	distribution string
	count        int
	keyRange     int
	seed         int64
	rebalance    bool
	verbose      bool
}

func statsCmd() *cobra.Command {
	var opts statsOptions
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Build a set from a generated workload and print its level profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.distribution, "dist", "d", "uniform", "key distribution: uniform, ascending or zipf")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1000, "number of keys to insert")
	cmd.Flags().IntVarP(&opts.keyRange, "range", "r", 1<<16, "keys are drawn from [0, range)")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 1, "seed for the workload and the set")
	cmd.Flags().BoolVarP(&opts.rebalance, "rebalance", "", false, "rebalance after loading and print both profiles")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log structural events")

	return cmd
}

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func runStats(out io.Writer, opts statsOptions) error {
	kind, err := parseDistribution(opts.distribution)
	if err != nil {
		return err
	}
	if opts.count < 0 {
		return errors.Errorf("count must not be negative, got %d", opts.count)
	}

	logger := newLogger(opts.verbose)
	set := skipset.New[int](
		skipset.WithSeed(uint64(opts.seed)),
		skipset.WithLogger(logger),
	)

	keys := generateKeys(kind, opts.count, opts.keyRange, opts.seed)
	if _, err := set.AddAll(skipset.Slice[int](keys)); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"distribution": kind.String(),
		"inserted":     len(keys),
		"distinct":     set.Len(),
	}).Info("Loaded workload.")

	renderStats(out, "loaded", set.Stats())

	if opts.rebalance {
		set.Rebalance()
		renderStats(out, "rebalanced", set.Stats())
	}
	return nil
}

func renderStats(out io.Writer, title string, st skipset.Stats) {
	fmt.Fprintf(out, "%s: len=%d max_height=%d grows=%d avg_steps=%.2f\n",
		title, st.Len, st.MaxHeight, st.Grows, st.AvgSearchSteps())

	rows := make([][]string, 0, len(st.LevelCounts))
	for level := len(st.LevelCounts) - 1; level >= 0; level-- {
		count := st.LevelCounts[level]
		fraction := 0.0
		if st.Len > 0 {
			fraction = float64(count) / float64(st.Len)
		}
		rows = append(rows, []string{
			strconv.Itoa(level),
			strconv.Itoa(count),
			strconv.FormatFloat(fraction, 'f', 4, 64),
		})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Level", "Nodes", "Fraction"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}
