package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tracklytic/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newWorkerCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run scheduled jobs: recurring transactions, saving plan refresh and token cleanup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorker(cmd.Context(), once)
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "Run every job once and exit")
	return cmd
}

func runWorker(ctx context.Context, once bool) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer a.Close()

	sched, err := newScheduler(cfg.Worker, a.jobs(), logger)
	if err != nil {
		return err
	}

	if once {
		return sched.RunOnce(ctx)
	}
	logger.Info("Starting worker")
	return sched.Run(ctx)
}

func (a *app) jobs() []job {
	w := a.cfg.Worker
	return []job{
		{
			name: "recurring_transactions",
			spec: w.RecurringSchedule,
			run: func(ctx context.Context, now time.Time) error {
				created, err := a.recurring.ProcessDue(ctx, now)
				if err != nil {
					return fmt.Errorf("failed to process recurring transactions: %w", err)
				}
				a.logger.InfoContext(ctx, "Recurring transactions processed", "created", created)
				return nil
			},
		},
		{
			name: "saving_plan_refresh",
			spec: w.SavingPlanSchedule,
			run: func(ctx context.Context, now time.Time) error {
				updated, err := a.savingPlans.RefreshAll(ctx, models.DateOnly(now))
				if err != nil {
					return fmt.Errorf("failed to refresh saving plans: %w", err)
				}
				a.logger.InfoContext(ctx, "Saving plans refreshed", "updated", updated)
				return nil
			},
		},
		{
			name: "token_cleanup",
			spec: w.TokenCleanupSchedule,
			run: func(ctx context.Context, now time.Time) error {
				refresh, refreshErr := a.repos.refresh.DeleteExpired()
				blacklisted, blacklistErr := a.repos.blacklist.DeleteExpired()
				if err := errors.Join(refreshErr, blacklistErr); err != nil {
					return fmt.Errorf("failed to clean up tokens: %w", err)
				}
				a.logger.InfoContext(ctx, "Expired tokens removed", "refresh", refresh, "blacklisted", blacklisted)
				return nil
			},
		},
	}
}
