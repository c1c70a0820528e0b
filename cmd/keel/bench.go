package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"keel/internal/ast"
	"keel/internal/diag"
	"keel/internal/lang"
)

var (
	benchWorkers int
	benchRounds  int
)

func init() {
	benchCmd.Flags().IntVar(&benchWorkers, "workers", runtime.NumCPU(), "number of independent contexts to build concurrently")
	benchCmd.Flags().IntVar(&benchRounds, "rounds", 10000, "interning requests per context")
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure context bootstrap and interning throughput",
	Long: `Bench builds one type context per worker and drives a synthetic
interning workload against each. A context is confined to its worker
goroutine; only fully independent contexts run in parallel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)
		if benchWorkers <= 0 || benchRounds <= 0 {
			return fmt.Errorf("workers and rounds must be positive")
		}

		start := time.Now()
		var g errgroup.Group
		totals := make([]uint64, benchWorkers)
		for w := 0; w < benchWorkers; w++ {
			w := w
			g.Go(func() error {
				c := ast.NewContext(lang.Default(), diag.NewBag(16))
				defer c.Release()
				if err := benchWorkload(c, benchRounds); err != nil {
					return err
				}
				totals[w] = c.Stats().TypesTotal
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		elapsed := time.Since(start)

		var built uint64
		for _, n := range totals {
			built += n
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d contexts, %d rounds each: %v\n", benchWorkers, benchRounds, elapsed)
		fmt.Fprintf(out, "constructed %d type nodes total\n", built)
		return nil
	},
}

// benchWorkload leans on the interning tables: the same shapes are
// requested over and over, so steady state is almost pure lookup.
func benchWorkload(c *ast.Context, rounds int) error {
	b := c.Builtins()
	x := c.Intern("x")
	y := c.Intern("y")
	for i := 0; i < rounds; i++ {
		elem := c.IntegerType(uint32(8 << (i % 4)))
		pair := c.TupleOf([]ast.TupleElem{{Type: elem, Name: x}, {Type: b.Float64, Name: y}})
		fn := c.FunctionOf(pair, b.Word, false)
		if fn != c.FunctionOf(pair, b.Word, false) {
			return fmt.Errorf("interning broke at round %d", i)
		}
		_ = c.ArrayOf(elem, uint64(i%16)+1)
	}
	return nil
}
