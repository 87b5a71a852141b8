package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sarchlab/tsvcost/monitoring"
)

type serveOptions struct {
	estimateOptions

	port        int
	openBrowser bool
}

var serveOpts = serveOptions{estimateOptions: defaultEstimateOptions()}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Estimate a TSV path and serve the results over HTTP.",
	Long: "`serve` runs the same estimation as `estimate` and keeps a " +
		"monitoring server alive until interrupted.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		applyChangedFlags(cmd, &serveOpts.estimateOptions)

		ctx, stop := signal.NotifyContext(
			cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, serveOpts, cmd)
	},
}

func serve(ctx context.Context, o serveOptions, cmd *cobra.Command) error {
	path, err := estimate(o.estimateOptions, cmd.OutOrStdout())
	if path == nil {
		return err
	}

	if err != nil {
		cmd.PrintErrln(err)
	}

	m := monitoring.NewMonitor().
		WithPortNumber(o.port).
		WithBrowser(o.openBrowser)
	m.RegisterEstimator(path)

	_, err = m.StartServer()
	if err != nil {
		return err
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return m.StopServer(shutdownCtx)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addEstimateFlags(serveCmd, &serveOpts.estimateOptions)

	serveCmd.Flags().IntVar(&serveOpts.port, "port", 0,
		"port of the monitoring server, random if 0")
	serveCmd.Flags().BoolVar(&serveOpts.openBrowser, "open-browser", false,
		"open the monitoring page in a browser")
}
