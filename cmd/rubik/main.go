// Command rubik is a terminal driver for the cube library: scrambling,
// solving, rendering, benchmarking and an interactive play mode.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cubetwin/rubik"
	"github.com/cubetwin/rubik/internal/render"
	"github.com/cubetwin/rubik/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rubik",
		Short:         "Model, scramble and solve a 3x3x3 cube",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(showCmd(), scrambleCmd(), solveCmd(), historyCmd(), benchCmd(), playCmd())
	return cmd
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func showCmd() *cobra.Command {
	var useBits bool

	cmd := &cobra.Command{
		Use:   "show [moves...]",
		Short: "Apply moves to a solved cube and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := rubik.ParseMoves(strings.Join(args, " "))
			if err != nil {
				return err
			}

			var g render.Gridder
			if useBits {
				c := rubik.NewBitCube()
				c.ApplyMoves(moves)
				g = c
			} else {
				c := rubik.NewCube()
				c.ApplyMoves(moves)
				g = c
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Net(g))
			return nil
		},
	}

	cmd.Flags().BoolVar(&useBits, "bits", false, "use the bit-packed representation")
	return cmd
}

func scrambleCmd() *cobra.Command {
	var (
		n    int
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Scramble a solved cube with random moves",
		RunE: func(cmd *cobra.Command, args []string) error {
			cube := rubik.NewCube()
			moves := rubik.Scramble(cube, newRNG(seed), n)

			fmt.Fprintln(cmd.OutOrStdout(), "Scramble:", rubik.FormatMoves(moves))
			fmt.Fprint(cmd.OutOrStdout(), render.Net(cube))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "moves", "n", 10, "number of scramble moves")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	return cmd
}

func solveCmd() *cobra.Command {
	var (
		n        int
		seed     int64
		maxDepth int
		dbPath   string
	)

	cmd := &cobra.Command{
		Use:   "solve [moves...]",
		Short: "Scramble (or apply the given moves) and search for a solution",
		Long: `Solve runs a breadth-first search over the twelve elementary moves.
The search is exponential in scramble depth; keep scrambles shallow or set
--max-depth to bound the search.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cube := rubik.NewCube()

			var scramble []rubik.Move
			if len(args) > 0 {
				moves, err := rubik.ParseMoves(strings.Join(args, " "))
				if err != nil {
					return err
				}
				cube.ApplyMoves(moves)
				scramble = moves
			} else {
				scramble = rubik.Scramble(cube, newRNG(seed), n)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Scramble:", rubik.FormatMoves(scramble))

			var opts []rubik.SolveOption
			if maxDepth > 0 {
				opts = append(opts, rubik.WithMaxDepth(maxDepth))
			}

			start := time.Now()
			sol := rubik.Solve(cube, opts...)
			elapsed := time.Since(start)

			switch sol.Status {
			case rubik.StatusAlreadySolved:
				fmt.Fprintln(cmd.OutOrStdout(), "Cube was already solved")
			case rubik.StatusFound:
				fmt.Fprintf(cmd.OutOrStdout(), "Solution (%d moves, %s): %s\n",
					len(sol.Moves), elapsed.Round(time.Millisecond), rubik.FormatMoves(sol.Moves))
			case rubik.StatusExhausted:
				fmt.Fprintf(cmd.OutOrStdout(), "No solution found within depth %d\n", maxDepth)
			}

			if dbPath != "" {
				st, err := store.Open(dbPath)
				if err != nil {
					return err
				}
				defer st.Close()
				return st.Save(store.Record{
					ID:        uuid.NewString(),
					CreatedAt: time.Now(),
					Scramble:  rubik.FormatMoves(scramble),
					Solution:  rubik.FormatMoves(sol.Moves),
					MoveCount: len(sol.Moves),
					Status:    sol.Status.String(),
				})
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "moves", "n", 3, "number of random scramble moves")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "bound the search depth (0 = unbounded)")
	cmd.Flags().StringVar(&dbPath, "save", "", "save the result to this SQLite database")
	return cmd
}

func historyCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved solves",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			records, err := st.List(limit)
			if err != nil {
				return err
			}

			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-14s  %q -> %q\n",
					r.CreatedAt.Format(time.RFC3339), r.ID[:8], r.Status, r.Scramble, r.Solution)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "rubik.db", "path to the SQLite database")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum records to list")
	return cmd
}

func benchCmd() *cobra.Command {
	var (
		sizes []int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare clone and turn throughput of the two representations",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rng := newRNG(seed)

			pieceCube := rubik.NewCube()
			bitCube := rubik.NewBitCube()

			fmt.Fprintln(out, "Benchmarking Clone:")
			for _, size := range sizes {
				fmt.Fprintf(out, "\nTrial %d\n", size)

				start := time.Now()
				for i := 0; i < size; i++ {
					pieceCube.Clone()
				}
				fmt.Fprintf(out, "  Cube:    %s\n", time.Since(start).Round(time.Microsecond))

				start = time.Now()
				for i := 0; i < size; i++ {
					bitCube.Clone()
				}
				fmt.Fprintf(out, "  BitCube: %s\n", time.Since(start).Round(time.Microsecond))
			}

			fmt.Fprintln(out, "\nBenchmarking Turn:")
			for _, size := range sizes {
				fmt.Fprintf(out, "\nTrial %d\n", size)

				moves := make([]rubik.Move, size)
				for i := range moves {
					moves[i] = rubik.RandomMove(rng)
				}

				start := time.Now()
				for _, m := range moves {
					pieceCube.Turn(m)
				}
				fmt.Fprintf(out, "  Cube:    %s\n", time.Since(start).Round(time.Microsecond))

				start = time.Now()
				for _, m := range moves {
					bitCube.Turn(m)
				}
				fmt.Fprintf(out, "  BitCube: %s\n", time.Since(start).Round(time.Microsecond))
			}

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{10_000, 100_000, 1_000_000}, "trial sizes")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	return cmd
}
