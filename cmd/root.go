package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disk-sim/sim"
	"github.com/inference-sim/disk-sim/sim/trace"
)

var (
	// CLI flags for the workload
	requestTracks   []int  // Pending track requests, in submission order
	initialPosition int    // Initial head position
	diskSize        int    // Number of tracks on the disk
	workloadPath    string // Optional YAML workload spec

	// CLI flags for the policy
	algorithmName string // Scheduling algorithm
	direction     string // Initial sweep direction
	nStep         int    // N-Step SCAN batch size

	// CLI flags for output
	logLevel     string // Log verbosity level
	outputFormat string // text or json
	traceLevel   string // none, summary or steps
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "disk-sim",
	Short: "Disk head-scheduling simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd simulates one algorithm using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one scheduling algorithm",
	Run: func(cmd *cobra.Command, args []string) {
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q; valid: none, summary, steps", traceLevel)
		}
		in, err := optionsFromFlags(cmd).resolve(true)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Simulating %s over %d requests, head=%d, disk=%d, direction=%s",
			in.Algorithm, len(in.Requests), in.InitialPosition, in.DiskSize, in.Direction)

		if err := runSimulation(os.Stdout, in, outputFormat, trace.TraceLevel(traceLevel)); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// compareCmd runs every algorithm over the same workload
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all scheduling algorithms on one workload",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := optionsFromFlags(cmd).resolve(false)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := runComparison(os.Stdout, in, outputFormat); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
	},
}

// algorithmsCmd lists the supported algorithms
var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List supported scheduling algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		if err := listAlgorithms(os.Stdout, outputFormat); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerWorkloadFlags attaches the flags shared by run and compare.
func registerWorkloadFlags(c *cobra.Command) {
	c.Flags().IntSliceVar(&requestTracks, "requests", nil, "Comma-separated track requests in submission order")
	c.Flags().IntVar(&initialPosition, "initial-position", 0, "Initial head position")
	c.Flags().IntVar(&diskSize, "disk-size", 200, "Number of tracks on the disk")
	c.Flags().StringVar(&workloadPath, "workload", "", "YAML workload spec; explicit flags override its values")
	c.Flags().StringVar(&direction, "direction", "right", "Initial sweep direction (right, left)")
	c.Flags().IntVar(&nStep, "n-step", sim.DefaultNStepBatchSize, "N-Step SCAN batch size")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "text", "Output format (text, json)")

	registerWorkloadFlags(runCmd)
	runCmd.Flags().StringVar(&algorithmName, "algorithm", "", "Scheduling algorithm (FCFS, SSTF, SCAN, C-SCAN, LOOK, C-LOOK, N-STEP SCAN, FSCAN)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Seek trace detail (none, summary, steps)")

	registerWorkloadFlags(compareCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(algorithmsCmd)
}
