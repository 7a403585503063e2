package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/format"
	"github.com/schedsim/schedsim/parser"
	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

var (
	algorithm  string // Scheduling policy: FCFS, RR, PRIORITY, CUSTOM
	quantum    int64  // RR's static time slice; ignored by CUSTOM, FCFS, PRIORITY
	verbose    bool   // Emit the per-transition trace
	perThread  bool   // Emit the per-thread table
	logLevel   string // Log verbosity level
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-event simulator for OS CPU schedulers",
}

// runCmd executes a simulation from a workload file named by its sole
// positional argument.
var runCmd = &cobra.Command{
	Use:   "run <workload-file>",
	Short: "Run a scheduler simulation against a workload file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		alg, err := sim.ParseAlgorithm(algorithm)
		if err != nil {
			return err
		}

		if err := applyDefaults(&alg, &quantum); err != nil {
			return err
		}

		workload, err := parser.ParseFile(args[0])
		if err != nil {
			return err
		}

		var trc *trace.Trace
		if verbose || perThread {
			trc = trace.NewTrace()
		}

		s := sim.NewSimulator(workload, sim.NewConfig(alg, quantum), trc)
		s.Run()

		if verbose {
			if err := format.WriteVerbose(cmd.OutOrStdout(), trc.Transitions); err != nil {
				return err
			}
		}
		if perThread {
			s.SummarizeThreads()
			if err := format.WritePerThread(cmd.OutOrStdout(), workload, trc.ThreadSummaries); err != nil {
				return err
			}
		}

		report := s.Metrics.Finalize()
		return format.WriteSummary(cmd.OutOrStdout(), report)
	},
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(sim.AlgorithmFCFS), "Scheduling algorithm: FCFS, RR, PRIORITY, CUSTOM")
	runCmd.Flags().Int64VarP(&quantum, "quantum", "q", 10, "Round-robin time quantum (ignored by FCFS, PRIORITY, CUSTOM)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Emit the per-transition trace")
	runCmd.Flags().BoolVarP(&perThread, "per_thread", "t", false, "Emit the per-thread ARR/CPU/I-O/TRT/END table")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
}
