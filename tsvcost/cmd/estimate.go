package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rs/xid"
	"github.com/spf13/cobra"

	"github.com/sarchlab/tsvcost/datarecording"
	"github.com/sarchlab/tsvcost/estimator"
	"github.com/sarchlab/tsvcost/param"
	"github.com/sarchlab/tsvcost/tech"
	"github.com/sarchlab/tsvcost/tsvpath"
)

type estimateOptions struct {
	node        int
	temperature float64
	roadmap     string

	numTSV  float64
	numRead float64

	layout       string
	targetHeight float64
	targetWidth  float64

	envFiles []string

	overrideSynchronous bool
	synchronous         bool
	overrideValidated   bool
	validated           bool

	record  string
	verbose bool
	asJSON  bool
}

func defaultEstimateOptions() estimateOptions {
	input := tech.DefaultInputParameter()

	return estimateOptions{
		node:        input.ProcessNode,
		temperature: input.Temperature,
		roadmap:     input.DeviceRoadmap.String(),
		numTSV:      1,
		numRead:     1,
		layout:      estimator.LayoutNone.String(),
	}
}

func parseRoadmap(s string) (tech.DeviceRoadmap, error) {
	switch strings.ToUpper(s) {
	case "HP":
		return tech.HP, nil
	case "LSTP":
		return tech.LSTP, nil
	default:
		return tech.HP, fmt.Errorf("unknown device roadmap %q", s)
	}
}

func (o estimateOptions) buildParam() (param.Param, error) {
	b := param.MakeBuilder()

	if len(o.envFiles) > 0 {
		var err error

		b, err = param.LoadEnv(b, o.envFiles...)
		if err != nil {
			return param.Param{}, err
		}
	}

	if o.overrideSynchronous {
		b = b.WithSynchronous(o.synchronous)
	}

	if o.overrideValidated {
		b = b.WithValidated(o.validated)
	}

	return b.Build(), nil
}

func (o estimateOptions) buildPath(out io.Writer) (*tsvpath.Comp, error) {
	roadmap, err := parseRoadmap(o.roadmap)
	if err != nil {
		return nil, err
	}

	input := &tech.InputParameter{
		Temperature:   o.temperature,
		ProcessNode:   o.node,
		DeviceRoadmap: roadmap,
	}

	t, err := tech.New(o.node)
	if err != nil {
		return nil, err
	}

	p, err := o.buildParam()
	if err != nil {
		return nil, err
	}

	path := tsvpath.MakeBuilder().
		WithInputParameter(input).
		WithTechnology(t).
		WithParam(p).
		Build("TSVPath")
	path.SetOutput(out)

	return path, nil
}

// estimate builds a TSV path and runs every stage on it. Stage errors are
// reported after all the stages have run.
func estimate(o estimateOptions, out io.Writer) (*tsvpath.Comp, error) {
	mode, err := estimator.ParseLayoutMode(o.layout)
	if err != nil {
		return nil, err
	}

	path, err := o.buildPath(out)
	if err != nil {
		return nil, err
	}

	if o.verbose {
		path.AcceptHook(estimator.NewStageLogger(log.Default()))
	}

	if o.record != "" {
		recorder := datarecording.New(o.record)
		defer recorder.Close()

		runID := xid.New().String()
		path.AcceptHook(estimator.NewRecordingHook(recorder, runID))

		execRecorder := datarecording.NewExecRecorder(recorder, runID)
		execRecorder.Start()
		execRecorder.Note("node", fmt.Sprint(o.node))
		execRecorder.Note("num_tsv", fmt.Sprint(o.numTSV))
		execRecorder.Note("num_read", fmt.Sprint(o.numRead))
		execRecorder.Note("layout", mode.String())
		defer func() {
			execRecorder.End()
			recorder.Flush()
		}()
	}

	path.Initialize()

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	collect(path.CalculateArea(o.targetHeight, o.targetWidth, mode))
	collect(path.CalculateLatency(o.numTSV, o.numRead))
	collect(path.CalculatePower(o.numTSV, o.numRead))

	if o.asJSON {
		bytes, err := json.MarshalIndent(path.Properties(), "", "  ")
		if err != nil {
			return path, err
		}

		fmt.Fprintln(out, string(bytes))
	} else {
		path.PrintProperty("TSV Path")
		fmt.Fprintln(out)
	}

	return path, errors.Join(errs...)
}

func addEstimateFlags(cmd *cobra.Command, o *estimateOptions) {
	flags := cmd.Flags()
	flags.IntVar(&o.node, "node", o.node,
		fmt.Sprintf("technology node in nm, one of %v", tech.Nodes()))
	flags.Float64Var(&o.temperature, "temperature", o.temperature,
		"operating temperature in K")
	flags.StringVar(&o.roadmap, "roadmap", o.roadmap,
		"device roadmap, HP or LSTP")
	flags.Float64Var(&o.numTSV, "num-tsv", o.numTSV,
		"number of TSVs crossed by one read")
	flags.Float64Var(&o.numRead, "num-read", o.numRead,
		"number of reads")
	flags.StringVar(&o.layout, "layout", o.layout,
		"layout policy, one of none, auto, or override")
	flags.Float64Var(&o.targetHeight, "target-height", 0,
		"target height in m used by the layout policy")
	flags.Float64Var(&o.targetWidth, "target-width", 0,
		"target width in m used by the layout policy")
	flags.StringSliceVar(&o.envFiles, "env", nil,
		"env files that set TSVCOST_* parameters")
	flags.BoolVar(&o.synchronous, "sync", true,
		"report the latency in clock cycles")
	flags.BoolVar(&o.validated, "validated", true,
		"scale the dynamic energy by the switching activity")
	flags.StringVar(&o.record, "record", "",
		"record the stage results into <record>.sqlite3")
	flags.BoolVar(&o.verbose, "verbose", false,
		"log every stage")
	flags.BoolVar(&o.asJSON, "json", false,
		"print the results as JSON")
}

func applyChangedFlags(cmd *cobra.Command, o *estimateOptions) {
	o.overrideSynchronous = cmd.Flags().Changed("sync")
	o.overrideValidated = cmd.Flags().Changed("validated")
}

var estimateOpts = defaultEstimateOptions()

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the cost of a TSV path.",
	Long: "`estimate` sizes the buffers of a TSV path and reports its area, " +
		"read latency, and power.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		applyChangedFlags(cmd, &estimateOpts)

		_, err := estimate(estimateOpts, cmd.OutOrStdout())

		return err
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	addEstimateFlags(estimateCmd, &estimateOpts)
}
