package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/benchmark"
	"github.com/YuminosukeSato/linsys/complexity"
	"github.com/YuminosukeSato/linsys/internal/config"
	"github.com/YuminosukeSato/linsys/linear"
	"github.com/YuminosukeSato/linsys/metrics"
	"github.com/YuminosukeSato/linsys/pkg/errors"
	"github.com/YuminosukeSato/linsys/pkg/log"
)

var (
	logLevel string
	// solve / decompose
	systemFile string
	method     string
	showOps    bool
	saveFile   string
	// compare
	sweepFile string
	minN      int
	maxN      int
	step      int
	seed      uint64
	workers   int
	plotFile  string
	ascii     bool
	// complexity
	size int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "linsys",
		Short:         "solve dense linear systems and count the arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.SetupLogger(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve the system in a YAML file",
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVarP(&systemFile, "file", "f", "", "system file (yaml)")
	solveCmd.Flags().StringVarP(&method, "method", "m", "", "gauss, gauss-jordan, lu or all (default: method in file, else gauss)")
	solveCmd.Flags().BoolVar(&showOps, "ops", false, "show operation counts next to the theoretical estimates")
	_ = solveCmd.MarkFlagRequired("file")

	decomposeCmd := &cobra.Command{
		Use:   "decompose",
		Short: "LU-decompose the coefficient matrix in a YAML file",
		RunE:  runDecompose,
	}
	decomposeCmd.Flags().StringVarP(&systemFile, "file", "f", "", "system file (yaml)")
	decomposeCmd.Flags().StringVar(&saveFile, "save", "", "write the factors to this file (gob)")
	_ = decomposeCmd.MarkFlagRequired("file")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare measured and theoretical operation counts on random systems",
		RunE:  runCompare,
	}
	compareCmd.Flags().StringVar(&sweepFile, "config", "", "sweep config file (yaml)")
	compareCmd.Flags().IntVar(&minN, "min", config.DefaultMinN, "smallest system size")
	compareCmd.Flags().IntVar(&maxN, "max", config.DefaultMaxN, "largest system size")
	compareCmd.Flags().IntVar(&step, "step", config.DefaultStep, "size increment")
	compareCmd.Flags().Uint64Var(&seed, "seed", config.DefaultSeed, "random seed")
	compareCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = one per CPU)")
	compareCmd.Flags().StringVar(&plotFile, "plot", "", "write a chart; format from the extension (svg, png, pdf)")
	compareCmd.Flags().BoolVar(&ascii, "ascii", false, "print a terminal chart")

	complexityCmd := &cobra.Command{
		Use:   "complexity",
		Short: "print theoretical operation counts for size n",
		RunE:  runComplexity,
	}
	complexityCmd.Flags().IntVarP(&size, "n", "n", 10, "system size")

	rootCmd.AddCommand(solveCmd, decomposeCmd, compareCmd, complexityCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func loadSystem() (*config.System, *mat.Dense, *mat.VecDense, error) {
	sys, err := config.LoadSystem(systemFile)
	if err != nil {
		return nil, nil, nil, err
	}
	a, b, err := sys.Matrices()
	if err != nil {
		return nil, nil, nil, err
	}
	return sys, a, b, nil
}

func selectedMethods(sys *config.System) ([]linear.Method, error) {
	switch strings.ToLower(method) {
	case "all":
		return linear.Methods(), nil
	case "":
		m, err := sys.SolveMethod()
		if err != nil {
			return nil, err
		}
		return []linear.Method{m}, nil
	}
	m, err := linear.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return []linear.Method{m}, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	sys, a, b, err := loadSystem()
	if err != nil {
		return err
	}
	methods, err := selectedMethods(sys)
	if err != nil {
		return err
	}

	n, _ := a.Dims()
	fmt.Println(header(sys.Name, n))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if showOps {
		fmt.Fprintln(w, "METHOD\tX\tRESIDUAL\tMUL/DIV\tADD/SUB\tSWAPS\tTHEORY MUL/DIV\tTHEORY ADD/SUB")
	} else {
		fmt.Fprintln(w, "METHOD\tX\tRESIDUAL")
	}

	for _, m := range methods {
		x, ops, err := linear.SolveCounted(m, a, b)
		if err != nil {
			return err
		}
		res, err := metrics.ResidualNorm(a, x, b)
		if err != nil {
			return err
		}

		if showOps {
			est := complexity.ForMethod(m, n)
			fmt.Fprintf(w, "%s\t%s\t%.3e\t%d\t%d\t%d\t%d\t%d\n",
				m, formatVec(x), res, ops.MulDiv(), ops.AddSub(), ops.Swaps(), est.MulDiv, est.AddSub)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%.3e\n", m, formatVec(x), res)
		}
	}
	return w.Flush()
}

func runDecompose(cmd *cobra.Command, args []string) error {
	sys, a, b, err := loadSystem()
	if err != nil {
		return err
	}

	lu := linear.NewLU()
	if err := lu.Fit(a); err != nil {
		return err
	}
	x, ops, err := lu.SolveCounted(b)
	if err != nil {
		return err
	}

	n := lu.Size()
	est := complexity.LU(n)
	fmt.Println(header(sys.Name, n))
	fmt.Println(labelStyle.Render("L ="))
	fmt.Printf("%v\n\n", mat.Formatted(lu.L, mat.Squeeze()))
	fmt.Println(labelStyle.Render("U ="))
	fmt.Printf("%v\n\n", mat.Formatted(lu.U, mat.Squeeze()))
	fmt.Println(labelStyle.Render("x =") + " " + formatVec(x))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PHASE\tMUL/DIV\tADD/SUB\tTHEORY MUL/DIV\tTHEORY ADD/SUB")
	fmt.Fprintf(w, "decomposition\t%d\t%d\t%d\t%d\n",
		lu.DecompositionOps.MulDiv, lu.DecompositionOps.AddSub, est.Decomposition.MulDiv, est.Decomposition.AddSub)
	fmt.Fprintf(w, "resolution\t%d\t%d\t%d\t%d\n",
		ops.MulDiv(), ops.AddSub(), est.Resolution.MulDiv, est.Resolution.AddSub)
	if err := w.Flush(); err != nil {
		return err
	}

	if saveFile != "" {
		if err := lu.SaveFile(saveFile); err != nil {
			return err
		}
		fmt.Println(dimStyle.Render("factors written to " + saveFile))
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultSweep()
	if sweepFile != "" {
		loaded, err := config.LoadSweep(sweepFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.MinN = minN
	}
	if flags.Changed("max") {
		cfg.MaxN = maxN
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	records, err := benchmark.Sweep(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("operation counts, n = %d..%d", cfg.MinN, cfg.MaxN)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tN\tMUL/DIV\tTHEORY\tADD/SUB\tTHEORY\tSWAPS\tRESIDUAL\tTIME")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.2e\t%s\n",
			r.Method, r.N,
			r.Measured.MulDiv, r.Estimated.MulDiv,
			r.Measured.AddSub, r.Estimated.AddSub,
			r.Measured.Swaps, r.ResidualNorm, r.Elapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if ascii {
		fmt.Println()
		fmt.Println(benchmark.ASCIIChart(records, 15, 80))
	}

	if plotFile != "" {
		format := strings.TrimPrefix(filepath.Ext(plotFile), ".")
		if format == "" {
			format = "svg"
		}
		if err := writePlot(records, plotFile, format); err != nil {
			return err
		}
		fmt.Println(dimStyle.Render("chart written to " + plotFile))
	}
	return nil
}

func runComplexity(cmd *cobra.Command, args []string) error {
	if size < 1 {
		return errors.NewValidationError("n", "must be at least 1", size)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("theoretical operation counts, n = %d", size)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tMUL/DIV\tADD/SUB\tTOTAL")
	for _, m := range linear.Methods() {
		est := complexity.ForMethod(m, size)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", m, est.MulDiv, est.AddSub, est.Total())
	}
	lu := complexity.LU(size)
	fmt.Fprintf(w, "  lu decomposition\t%d\t%d\t%d\n", lu.Decomposition.MulDiv, lu.Decomposition.AddSub, lu.Decomposition.Total())
	fmt.Fprintf(w, "  lu resolution\t%d\t%d\t%d\n", lu.Resolution.MulDiv, lu.Resolution.AddSub, lu.Resolution.Total())
	return w.Flush()
}

// writePlot renders records into path and reports a failed Close.
func writePlot(records []benchmark.Record, path, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()
	return benchmark.Plot(records, f, format)
}
