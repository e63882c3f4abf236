package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/metailurini/skipset"
)

type demoOptions struct {
	resume  bool
	verbose bool
}

func demoCmd() *cobra.Command {
	var opts demoOptions
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through the basic set operations and print each result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.resume, "resume", "", false, "resume after the removed element when removing through an iterator")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log structural events")

	return cmd
}

func runDemo(out io.Writer, opts demoOptions) error {
	policy := skipset.ResetToHead
	if opts.resume {
		policy = skipset.ResumeAtSuccessor
	}

	set, err := skipset.From[int](skipset.Slice[int]{1, 3, 2, 5, 4},
		skipset.WithRemovePolicy(policy),
		skipset.WithLogger(newLogger(opts.verbose)),
	)
	if err != nil {
		return errors.Wrap(err, "build set")
	}
	fmt.Fprintf(out, "insert 1 3 2 5 4 -> %v\n", set)

	first, err := set.First()
	if err != nil {
		return errors.Wrap(err, "first")
	}
	last, err := set.Last()
	if err != nil {
		return errors.Wrap(err, "last")
	}
	fmt.Fprintf(out, "first=%d last=%d\n", first, last)

	added, _ := set.Add(3)
	fmt.Fprintf(out, "add 3 again -> changed=%t len=%d\n", added, set.Len())

	removed, _ := set.Remove(3)
	found, _ := set.Contains(3)
	fmt.Fprintf(out, "remove 3 -> changed=%t contains(3)=%t %v\n", removed, found, set)

	it := set.Iterator()
	var visited []int
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return errors.Wrap(err, "iterate")
		}
		visited = append(visited, v)
		if v == 2 {
			if err := it.Remove(); err != nil {
				return errors.Wrap(err, "iterator remove")
			}
		}
	}
	fmt.Fprintf(out, "iterate removing 2 -> visited %v, left %v\n", visited, set)

	other := skipset.New[int]()
	for _, v := range []int{5, 4, 1} {
		if _, err := other.Add(v); err != nil {
			return errors.Wrap(err, "add")
		}
	}
	fmt.Fprintf(out, "%v equals %v -> %t (hash %d / %d)\n",
		set, other, set.Equal(other), set.Hash(), other.Hash())

	set.Rebalance()
	fmt.Fprintf(out, "rebalance -> %v\n", set)

	if _, err := set.SubSet(1, 4); err != nil {
		fmt.Fprintf(out, "sub set -> %v\n", err)
	}
	return nil
}
