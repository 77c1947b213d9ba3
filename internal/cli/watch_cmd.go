package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/alexanderramin/studypal/internal/config"
)

const shutdownTimeout = 5 * time.Second

func newWatchCmd(app *App) *cobra.Command {
	var interval time.Duration
	var metricsAddr string
	var once bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recompute the profile periodically and print reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", interval)
			}
			if app.Adaptive && !app.Personality.GetSettings(ctx, app.UserID).Adaptive {
				app.Personality.SetAdaptive(ctx, app.UserID, true)
			}
			if once {
				tick(ctx, app, cmd.OutOrStdout(), interval)
				return nil
			}
			return runWatch(ctx, app, cmd.OutOrStdout(), interval, metricsAddr)
		},
	}

	defaultInterval := app.RecomputeInterval
	if defaultInterval <= 0 {
		defaultInterval = config.DefaultRecomputeInterval
	}
	cmd.Flags().DurationVar(&interval, "interval", defaultInterval, "Time between profile recomputes")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", app.MetricsAddr, "Serve Prometheus /metrics on this address (empty disables)")
	cmd.Flags().BoolVar(&once, "once", false, "Run a single recompute and exit")

	return cmd
}

// runWatch drives the recompute loop and, when addr is set, the metrics
// endpoint until ctx is cancelled.
func runWatch(ctx context.Context, app *App, w io.Writer, interval time.Duration, addr string) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tick(ctx, app, w, interval)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				tick(ctx, app, w, interval)
			}
		}
	})

	if addr != "" && app.Gatherer != nil {
		srv := &http.Server{
			Addr:              addr,
			Handler:           metricsMux(app.Gatherer),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			app.logger().InfoContext(ctx, "serving metrics", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

func metricsMux(gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// tick recomputes the profile once and prints reminders for tasks due
// before the next tick.
func tick(ctx context.Context, app *App, w io.Writer, interval time.Duration) {
	p := app.Profiles.Recompute(ctx, app.UserID)
	fmt.Fprintf(w, "%s stress %s, motivation %d/10\n",
		formatter.Dim(time.Now().Format("15:04")), p.StressLevel, p.CurrentMotivationLevel)

	notes, err := app.Assistant.Notifications(ctx, app.UserID, interval)
	if err != nil {
		app.logger().WarnContext(ctx, "listing reminders failed", "user_id", app.UserID, "error", err)
		return
	}
	fmt.Fprint(w, formatter.FormatNotifications(notificationRows(notes)))
}
