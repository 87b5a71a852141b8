package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sarchlab/tsvcost/datarecording"
	"github.com/sarchlab/tsvcost/estimator"
)

type historyOptions struct {
	db     string
	runID  string
	stage  string
	limit  int
	offset int
}

func (o historyOptions) queryParams() datarecording.QueryParams {
	var conds []string
	var args []any

	if o.runID != "" {
		conds = append(conds, "RunID = ?")
		args = append(args, o.runID)
	}

	if o.stage != "" {
		conds = append(conds, "Stage = ?")
		args = append(args, o.stage)
	}

	return datarecording.QueryParams{
		Where:   strings.Join(conds, " AND "),
		Args:    args,
		Limit:   o.limit,
		Offset:  o.offset,
		OrderBy: "RunID, rowid",
	}
}

// history prints the recorded stage results of reader.
func history(
	ctx context.Context,
	reader datarecording.DataReader,
	o historyOptions,
	out io.Writer,
) error {
	reader.MapTable(estimator.StageTable, estimator.StageRecord{})

	results, total, err := reader.Query(ctx, estimator.StageTable, o.queryParams())
	if err != nil {
		return fmt.Errorf("querying %s: %w", estimator.StageTable, err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tCOMPONENT\tSTAGE\tAREA (m^2)\tLATENCY\tENERGY (J)\tLEAKAGE (W)")

	for _, r := range results {
		rec := r.(*estimator.StageRecord)

		latency := fmt.Sprintf("%g s", rec.ReadLatency)
		if rec.LatencyInCycles {
			latency = fmt.Sprintf("%g cycles", rec.ReadLatency)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\t%g\t%g\n",
			rec.RunID, rec.Component, rec.Stage,
			rec.Area, latency, rec.ReadDynamicEnergy, rec.Leakage)
	}

	err = w.Flush()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d of %d records\n", len(results), total)

	return nil
}

var historyOpts historyOptions

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded estimation results.",
	Long: "`history --db results.sqlite3` lists the stage results recorded " +
		"by `estimate --record`.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reader := datarecording.NewReader(historyOpts.db)
		defer reader.Close()

		return history(cmd.Context(), reader, historyOpts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	flags := historyCmd.Flags()
	flags.StringVar(&historyOpts.db, "db", "", "the recorded database file")
	flags.StringVar(&historyOpts.runID, "run", "", "only show one run")
	flags.StringVar(&historyOpts.stage, "stage", "",
		"only show one stage, e.g. CalculatePower")
	flags.IntVar(&historyOpts.limit, "limit", 0, "maximum number of rows")
	flags.IntVar(&historyOpts.offset, "offset", 0, "number of rows to skip")

	err := historyCmd.MarkFlagRequired("db")
	if err != nil {
		panic(err)
	}
}
