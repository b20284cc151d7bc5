package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/counterreg/config"
	"github.com/sarchlab/counterreg/countercomp"
	"github.com/sarchlab/counterreg/datarecording"
	"github.com/sarchlab/counterreg/monitoring"
	"github.com/sarchlab/counterreg/timing"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the counter for a number of cycles and print the trace.",
	Long: "Run the counter for a number of cycles and print one line per " +
		"rising edge: cycle, time, reset, enable and the count after the " +
		"edge. Settings come from COUNTERREG_* environment variables, an " +
		"optional .env file and the flags below, in increasing priority.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")

		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		applyRunFlags(cmd, &cfg)

		if err := cfg.Validate(); err != nil {
			return err
		}

		openBrowser, _ := cmd.Flags().GetBool("open-browser")

		return runSimulation(cmd.Context(), cfg, cmd.OutOrStdout(), openBrowser)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("env-file", ".env", "The .env file to load")
	runCmd.Flags().Uint64("cycles", 0, "Number of rising edges to simulate")
	runCmd.Flags().Float64("freq", 0, "Clock frequency in Hz")
	runCmd.Flags().String("stimulus", "",
		"Reset/enable schedule, for example 0:r,1-17:e")
	runCmd.Flags().String("script", "",
		"Starlark file defining signals(cycle)")
	runCmd.Flags().Uint("initial", 0, "Power-on value of the register")
	runCmd.Flags().String("db", "",
		"Record the trace into <db>.sqlite3")
	runCmd.Flags().Int("monitor-port", 0,
		"Serve the monitor on this port, 0 disables it and ports "+
			"below 1000 pick a random port")
	runCmd.Flags().Bool("open-browser", false,
		"Open the monitor in a browser")
	runCmd.Flags().BoolP("verbose", "v", false, "Log every edge to stderr")
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("cycles") {
		cfg.Cycles, _ = flags.GetUint64("cycles")
	}

	if flags.Changed("freq") {
		cfg.FreqHz, _ = flags.GetFloat64("freq")
	}

	if flags.Changed("stimulus") {
		cfg.Stimulus, _ = flags.GetString("stimulus")
	}

	if flags.Changed("script") {
		cfg.Script, _ = flags.GetString("script")
	}

	if flags.Changed("initial") {
		cfg.Initial, _ = flags.GetUint("initial")
	}

	if flags.Changed("db") {
		cfg.DB, _ = flags.GetString("db")
	}

	if flags.Changed("monitor-port") {
		cfg.MonitorPort, _ = flags.GetInt("monitor-port")
	}

	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
}

func runSimulation(
	ctx context.Context,
	cfg config.Config,
	out io.Writer,
	openBrowser bool,
) error {
	source, err := cfg.Source()
	if err != nil {
		return err
	}

	sim := countercomp.MakeSimulationBuilder().
		WithFreq(cfg.Freq()).
		WithCycles(cfg.Cycles).
		WithSource(source).
		WithInitialCount(uint8(cfg.Initial)).
		Build()

	if cfg.Verbose {
		logger := log.New(os.Stderr, "", 0)
		sim.Engine().AcceptHook(timing.NewEventLogger(logger))
		sim.AcceptHook(countercomp.NewEdgeLogger(logger))
	}

	var recorder datarecording.DataRecorder
	if cfg.DB != "" {
		recorder = datarecording.New(cfg.DB)
		sim.AcceptHook(datarecording.NewEdgeRecorder(recorder))
	}

	var monitor *monitoring.Monitor
	if cfg.MonitorPort != 0 {
		monitor = startMonitor(sim, cfg, openBrowser)
	}

	runErr := sim.Run()

	printTrace(out, sim.Trace())

	if recorder != nil {
		if err := recorder.Close(); err != nil && runErr == nil {
			runErr = fmt.Errorf("closing trace database: %w", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	if monitor != nil {
		waitForInterrupt(ctx)
	}

	return nil
}

func startMonitor(
	sim *countercomp.Simulation,
	cfg config.Config,
	openBrowser bool,
) *monitoring.Monitor {
	monitor := monitoring.NewMonitor().WithPortNumber(cfg.MonitorPort)

	monitor.RegisterEngine(sim.Engine())
	monitor.RegisterComponent(sim.Counter())

	bar := monitor.CreateProgressBar("Cycles", cfg.Cycles)
	sim.AcceptHook(monitoring.EdgeProgress{Bar: bar})

	port := monitor.StartServer()

	if openBrowser {
		url := fmt.Sprintf("http://localhost:%d", port)
		if err := browser.OpenURL(url); err != nil {
			log.Printf("cannot open browser: %v", err)
		}
	}

	return monitor
}

func waitForInterrupt(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintln(os.Stderr, "Simulation finished, press Ctrl+C to exit.")
	<-ctx.Done()
}

func printTrace(out io.Writer, trace []countercomp.EdgeSample) {
	fmt.Fprintln(out, "cycle time reset enable count")

	for _, s := range trace {
		fmt.Fprintf(out, "%d %.10f %d %d %d\n",
			s.Cycle, s.Time, boolToBit(s.Reset), boolToBit(s.Enable), s.After)
	}
}

func boolToBit(b bool) int {
	if b {
		return 1
	}

	return 0
}
