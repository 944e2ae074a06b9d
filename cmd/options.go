package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethpandaops/timekeeper/internal/config"
	"github.com/ethpandaops/timekeeper/internal/metrics"
	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// timingFlags are the flags shared by run and bench. Empty values fall back
// to the loaded configuration.
type timingFlags struct {
	unit     string
	label    string
	template string
	output   string
	quiet    bool
}

func (f *timingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.unit, "unit", "u", "", "duration unit: auto, ns, us, ms, s, m, h")
	cmd.Flags().StringVarP(&f.label, "label", "l", "", "label shown in the output line (default workload name)")
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "output line template")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "where to write lines: stdout, stderr or a file path")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "suppress the timing line")
	cmd.Flags().SetInterspersed(false)
}

// settings builds timer settings from the flags and appConfig. The returned
// close function releases the output sink.
func (f *timingFlags) settings(defaultLabel string) (timer.Settings, func() error, error) {
	unit, err := timer.ParseUnit(firstNonEmpty(f.unit, appConfig.Unit))
	if err != nil {
		return timer.Settings{}, nil, err
	}

	out, closeFn, err := config.OpenOutput(firstNonEmpty(f.output, appConfig.Output))
	if err != nil {
		return timer.Settings{}, nil, err
	}

	return timer.Settings{
		Label:    firstNonEmpty(f.label, defaultLabel),
		Template: firstNonEmpty(f.template, appConfig.Template),
		Quiet:    f.quiet,
		Output:   out,
		Unit:     unit,
		Log:      Logger,
	}, closeFn, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// withMetrics runs work with a Prometheus observer when addr is set. The
// /metrics endpoint keeps serving after work returns until the process is
// interrupted.
func withMetrics(ctx context.Context, addr string, work func(obs timer.Observer) error) error {
	if addr == "" {
		return work(nil)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()

	exporter, err := metrics.NewExporter(reg)
	if err != nil {
		return err
	}

	srv, err := metrics.Listen(Logger, addr, reg)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx)
	})

	if err := work(exporter); err != nil {
		stop()
		_ = g.Wait()

		return err
	}

	Logger.WithField("addr", srv.Addr()).Info("Timing complete, serving metrics until interrupted")
	return g.Wait()
}
