package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sarchlab/tsvcost/sweep"
	"github.com/sarchlab/tsvcost/tsvpath"
)

type sweepOptions struct {
	estimateOptions

	maxTSV     int
	latencyFig string
	energyFig  string
}

func runSweep(o sweepOptions, out io.Writer) ([]sweep.Point, error) {
	factory := func() (*tsvpath.Comp, error) {
		return o.buildPath(io.Discard)
	}

	points, err := sweep.Run(factory, sweep.Range(o.maxTSV), o.numRead)
	if err != nil {
		return nil, err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUM TSV\tREAD LATENCY\tREAD ENERGY (J)")

	for _, p := range points {
		unit := "s"
		if p.LatencyInCycles {
			unit = "cycles"
		}

		fmt.Fprintf(w, "%g\t%g %s\t%g\n",
			p.NumTSV, p.ReadLatency, unit, p.ReadDynamicEnergy)
	}

	err = w.Flush()
	if err != nil {
		return nil, err
	}

	figures := []struct {
		file   string
		metric sweep.Metric
	}{
		{o.latencyFig, sweep.MetricLatency},
		{o.energyFig, sweep.MetricEnergy},
	}

	for _, f := range figures {
		if f.file == "" {
			continue
		}

		err = sweep.Plot(points, f.metric, f.file)
		if err != nil {
			return nil, err
		}
	}

	return points, nil
}

var sweepOpts = sweepOptions{
	estimateOptions: defaultEstimateOptions(),
	maxTSV:          16,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate a TSV path over a range of TSV counts.",
	Long: "`sweep --max-tsv 16 --latency-plot latency.png` evaluates the " +
		"path for 1 to 16 TSVs and plots the read latency.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		applyChangedFlags(cmd, &sweepOpts.estimateOptions)

		_, err := runSweep(sweepOpts, cmd.OutOrStdout())

		return err
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	flags := sweepCmd.Flags()
	flags.IntVar(&sweepOpts.node, "node", sweepOpts.node, "technology node in nm")
	flags.Float64Var(&sweepOpts.temperature, "temperature",
		sweepOpts.temperature, "operating temperature in K")
	flags.Float64Var(&sweepOpts.numRead, "num-read", sweepOpts.numRead,
		"number of reads")
	flags.StringSliceVar(&sweepOpts.envFiles, "env", nil,
		"env files that set TSVCOST_* parameters")
	flags.BoolVar(&sweepOpts.synchronous, "sync", true,
		"report the latency in clock cycles")
	flags.BoolVar(&sweepOpts.validated, "validated", true,
		"scale the dynamic energy by the switching activity")
	flags.IntVar(&sweepOpts.maxTSV, "max-tsv", sweepOpts.maxTSV,
		"largest number of TSVs to evaluate")
	flags.StringVar(&sweepOpts.latencyFig, "latency-plot", "",
		"write the latency plot to this file")
	flags.StringVar(&sweepOpts.energyFig, "energy-plot", "",
		"write the energy plot to this file")
}
