package jobs

import (
	"context"
	"log/slog"
	"time"

	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/model/quote"

	"github.com/robfig/cron/v3"
)

// DefaultRateProbeSchedule runs the probe every five minutes.
const DefaultRateProbeSchedule = "0 */5 * * * *"

const probeTimeout = 30 * time.Second

// RatesQueryHandler is implemented by queries.GetRatesQueryHandler.
type RatesQueryHandler interface {
	Handle(ctx context.Context, query queries.GetRatesQuery) (queries.GetRatesQueryResponse, error)
}

// RateProbeJob periodically quotes the reference shipment.
type RateProbeJob struct {
	handler  RatesQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRateProbeJob creates the probe. An empty schedule selects DefaultRateProbeSchedule.
func NewRateProbeJob(handler RatesQueryHandler, schedule string, logger *slog.Logger) *RateProbeJob {
	if schedule == "" {
		schedule = DefaultRateProbeSchedule
	}
	return &RateProbeJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "rate_probe_job"),
	}
}

// Start registers the probe and starts the scheduler.
func (j *RateProbeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rate probe job started", "schedule", j.schedule)
	return nil
}

// Run executes one probe.
func (j *RateProbeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	query, err := queries.NewGetRatesQuery(queries.ReferenceShipment())
	if err != nil {
		j.logger.ErrorContext(ctx, "Rate probe could not build query", "error", err)
		return
	}

	start := time.Now()
	res, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Rate probe failed", "error", err)
		return
	}

	attrs := []any{"source", res.Source.String(), "quotes", len(res.Quotes), "duration", time.Since(start)}
	switch res.Source {
	case quote.SourcePrimary, quote.SourceSecondary:
		j.logger.InfoContext(ctx, "Rate probe served by live provider", attrs...)
	default:
		j.logger.WarnContext(ctx, "Rate probe fell back to synthesized quotes", attrs...)
	}
}

// Stop stops the scheduler and waits for a running probe to finish.
func (j *RateProbeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rate probe job stopped")
}
