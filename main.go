package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otogan/we-have-got-your-number/calculator"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		verbose   bool
		stats     bool
		workers   int
		maxRounds int
	)
	cmd := &cobra.Command{
		Use:   `we-have-got-your-number "d d d d"`,
		Short: "lists every value in [1, 100] reachable from four digits",
		Long: `Takes four digits and exhaustively combines them with digit concatenation,
addition and subtraction, each digit used exactly once. Prints every target
value in [1, 100] that can be reached, with the distinct expressions
reaching it.`,
		Example:       `  we-have-got-your-number "5 2 4 8"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := parseDigits(args[0])
			if err != nil {
				return err
			}
			c, err := calculator.New(digits)
			if err != nil {
				return err
			}
			c.Verbose = verbose
			c.Workers = workers
			c.MaxRounds = maxRounds
			solutions, err := c.Solve()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range solutions.Values() {
				fmt.Fprintf(out, "%d = %s\n", v, strings.Join(solutions[v], " , "))
			}
			fmt.Fprintf(out, "%d values reached, %d expressions\n", len(solutions), solutions.Count())
			if stats {
				fmt.Fprintf(out, "c rounds: %d\nc segments: %d\nc candidates: %d\nc rejected: %d\nc duplicates: %d\n",
					c.Stats.NbRounds, c.Stats.NbSegments, c.Stats.NbCandidates, c.Stats.NbRejected, c.Stats.NbDuplicates)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print one comment line per closure round")
	cmd.Flags().BoolVar(&stats, "stats", false, "print search counters after the results")
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutines constructing candidates within a round")
	cmd.Flags().IntVar(&maxRounds, "max-rounds", 0, "closure round cap, 0 for the default, negative for none")
	return cmd
}

// parseDigits splits a whitespace-separated digit string such as "5 2 4 8".
// Cardinality is checked later by calculator.New.
func parseDigits(arg string) ([]int, error) {
	fields := strings.Fields(arg)
	digits := make([]int, 0, len(fields))
	for _, f := range fields {
		d, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("could not parse digit %q: %v", f, err)
		}
		digits = append(digits, d)
	}
	return digits, nil
}
