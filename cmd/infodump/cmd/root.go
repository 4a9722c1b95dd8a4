// Package cmd provides the CLI commands for infodump.
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/josephfleet/infodump/internal/logging"
	"github.com/josephfleet/infodump/internal/report"
	"github.com/josephfleet/infodump/internal/sysinfo"
	"github.com/josephfleet/infodump/pkg/version"
)

// reportOptions carries the root command's flag values.
type reportOptions struct {
	scanRoot string
	largest  int
	topCPU   int
	noColor  bool
	sensors  bool
	gpu      bool
	debug    bool
}

// NewRootCmd creates the root command for the infodump CLI.
func NewRootCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "infodump",
		Short: "One-shot host diagnostic report",
		Long: `infodump gathers a fixed set of host facts and prints them as a
formatted report: identity, outbound reachability, memory, disks,
largest files, and top CPU processes.

Every step is best-effort: a failing query degrades its own section
and never aborts the run. The command always exits 0 on completion.`,
		Example: `  # Run the full report
  infodump

  # Scan a different tree for large files, show top 5 CPU hogs
  infodump --path /var --cpu 5

  # Include hardware temperature sections
  infodump --sensors --gpu`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.SetVersionTemplate("infodump version {{.Version}}\n")

	cmd.Flags().StringVar(&opts.scanRoot, "path", report.DefaultScanRoot, "Root of the largest-files scan")
	cmd.Flags().IntVar(&opts.largest, "largest", report.DefaultTopCount, "Number of largest files to list")
	cmd.Flags().IntVar(&opts.topCPU, "cpu", report.DefaultTopCount, "Number of top CPU processes to list")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&opts.sensors, "sensors", false, "Include hardware temperature readings")
	cmd.Flags().BoolVar(&opts.gpu, "gpu", false, "Include Nvidia GPU temperature readings")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to stderr")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runReport(cmd *cobra.Command, opts *reportOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := "warn"
	if opts.debug {
		level = "debug"
	}
	logger := logging.Setup(level)

	out := cmd.OutOrStdout()
	renderer := report.NewRenderer(out, noColorFor(out, opts.noColor))

	gen := report.New(
		sysinfo.NewSystemProvider(),
		sysinfo.NewPingProber(),
		report.WithRenderer(renderer),
		report.WithLogger(logger),
		report.WithScanRoot(opts.scanRoot),
		report.WithLargestCount(opts.largest),
		report.WithTopCPUCount(opts.topCPU),
		report.WithSensors(opts.sensors),
		report.WithGPU(opts.gpu),
	)

	return gen.Run(ctx)
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
