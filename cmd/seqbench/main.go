package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/seqbench/internal/bench"
	"github.com/san-kum/seqbench/internal/config"
	"github.com/san-kum/seqbench/internal/seq"
	"github.com/san-kum/seqbench/internal/storage"
	"github.com/san-kum/seqbench/internal/tui"
)

var (
	dataDir   string
	logLevel  string
	logFormat string
	// run flags
	configFile  string
	preset      string
	structure   string
	label       string
	repetitions int
	capacity    int
	insertValue int
	operations  []string
	// plot flags
	plotHeight int
	plotWidth  int
)

var (
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	good  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	bad   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// main registers the seqbench commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "seqbench",
		Short:         "array list and queue latency lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run("", seq.DefaultCapacity)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "out", config.DefaultOutputDir, "results directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (console, json)")

	runCmd := &cobra.Command{
		Use:   "run [input files...]",
		Short: "measure every operation for each input line (stdin when no file given)",
		RunE:  runBench,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&structure, "structure", config.DefaultStructure, "structure to measure (arraylist, queue)")
	runCmd.Flags().StringVar(&label, "label", config.DefaultLabel, "label written in result records")
	runCmd.Flags().IntVar(&repetitions, "reps", config.DefaultRepetitions, "measurements per operation and line")
	runCmd.Flags().IntVar(&capacity, "capacity", seq.DefaultCapacity, "initial container capacity")
	runCmd.Flags().IntVar(&insertValue, "value", config.DefaultInsertValue, "value inserted by add operations")
	runCmd.Flags().StringSliceVar(&operations, "ops", config.Operations, "operations to measure")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [operation]",
		Short: "show records of an operation",
		Args:  cobra.ExactArgs(1),
		RunE:  showRecords,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [operation]",
		Short: "plot median latency against input size",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRecords,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [operations...]",
		Short: "export records to JSON on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args...)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTRUCTURE\tLABEL\tREPS\tCAPACITY")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", name, p.Structure, p.Label, p.Repetitions, p.InitialCapacity)
			}
			return w.Flush()
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [structure]",
		Short: "interactively push and pop on a live container",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return tui.Run(name, capacity)
		},
	}
	exploreCmd.Flags().IntVar(&capacity, "capacity", seq.DefaultCapacity, "initial container capacity")

	rootCmd.AddCommand(runCmd, listCmd, showCmd, plotCmd, exportJSONCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, bad.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func newLogger(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = os.Stderr
	switch format {
	case "console":
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format: %s", format)
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// resolveConfig layers defaults, preset, config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("structure") {
		cfg.Structure = structure
	}
	if flags.Changed("label") {
		cfg.Label = label
	}
	if flags.Changed("reps") {
		cfg.Repetitions = repetitions
	}
	if flags.Changed("capacity") {
		cfg.InitialCapacity = capacity
	}
	if flags.Changed("value") {
		cfg.InsertValue = insertValue
	}
	if flags.Changed("ops") {
		cfg.Operations = operations
	}
	if flags.Changed("out") {
		cfg.OutputDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}

	return cfg, cfg.Validate()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	st := storage.New(cfg.OutputDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner, err := bench.NewRunner(cfg, st, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	fmt.Fprintf(os.Stderr, "%s %s (%d reps, capacity %d)\n",
		title.Render("measuring"), cfg.Label, cfg.Repetitions, cfg.InitialCapacity)

	var total bench.Summary
	started := time.Now()
	for _, input := range inputs {
		sum, err := runInput(ctx, runner, input)
		total.Add(sum)
		if err != nil {
			return err
		}
	}

	runID, err := st.SaveRun(storage.RunMetadata{
		Label:       cfg.Label,
		Structure:   cfg.Structure,
		Timestamp:   started,
		Repetitions: cfg.Repetitions,
		Capacity:    cfg.InitialCapacity,
		Operations:  cfg.Operations,
		Inputs:      inputs,
		Lines:       total.Lines,
		Failed:      total.Failed,
		Records:     total.Records,
		Elapsed:     total.Elapsed,
	})
	if err != nil {
		return err
	}

	status := good.Render(fmt.Sprintf("%d lines", total.Lines))
	if total.Failed > 0 {
		status += " " + bad.Render(fmt.Sprintf("(%d failed)", total.Failed))
	}
	fmt.Fprintf(os.Stderr, "%s %s, %d records in %v\n", title.Render("done"), status, total.Records, total.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "%s %s\n", dim.Render("run id:"), runID)
	fmt.Fprintf(os.Stderr, "%s %s\n", dim.Render("results:"), st.Dir())

	return nil
}

func runInput(ctx context.Context, runner *bench.Runner, input string) (bench.Summary, error) {
	if input == "-" {
		return runner.Run(ctx, "stdin", os.Stdin)
	}
	f, err := os.Open(input)
	if err != nil {
		return bench.Summary{}, err
	}
	defer f.Close()
	return runner.Run(ctx, input, f)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.Runs()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTRUCTURE\tLABEL\tTIME\tREPS\tLINES\tFAILED\tRECORDS\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%v\n",
			run.ID,
			run.Structure,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Repetitions,
			run.Lines,
			run.Failed,
			run.Records,
			run.Elapsed.Round(time.Millisecond),
		)
	}

	return w.Flush()
}

func showRecords(cmd *cobra.Command, args []string) error {
	records, err := storage.New(dataDir).Records(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records for %s in %s", args[0], dataDir)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tSIZE\tMEDIAN")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%d\t%v\n", r.Label, r.InputSize, r.Median)
	}
	return w.Flush()
}

func plotRecords(cmd *cobra.Command, args []string) error {
	op := args[0]
	records, err := storage.New(dataDir).Records(op)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no data to plot")
	}

	labels, series := seriesByLabel(records)

	fmt.Printf("operation: %s\n", op)
	fmt.Printf("records: %d\n", len(records))
	for _, l := range labels {
		fmt.Printf("  %s %s\n", dim.Render(fmt.Sprintf("%-20s", l)), describe(series[l]))
	}
	fmt.Println()

	data := make([][]float64, 0, len(labels))
	for _, l := range labels {
		ys := make([]float64, len(series[l]))
		for i, r := range series[l] {
			ys[i] = float64(r.Median.Nanoseconds())
		}
		data = append(data, ys)
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s median ns by increasing input size (%s)", op, strings.Join(labels, ", "))),
	)
	fmt.Println(graph)
	return nil
}

// seriesByLabel groups records per label, each sorted by input size.
func seriesByLabel(records []storage.Record) ([]string, map[string][]storage.Record) {
	series := make(map[string][]storage.Record)
	for _, r := range records {
		series[r.Label] = append(series[r.Label], r)
	}

	labels := make([]string, 0, len(series))
	for l, rs := range series {
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].InputSize < rs[j].InputSize })
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels, series
}

func describe(rs []storage.Record) string {
	first, last := rs[0], rs[len(rs)-1]
	return fmt.Sprintf("%d points, n=%d..%d, %v..%v", len(rs), first.InputSize, last.InputSize, first.Median, last.Median)
}
