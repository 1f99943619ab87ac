package quota

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ResetJob clears the delivery counters on a cron schedule.
type ResetJob interface {
	Start()
	Stop()
}

type resetJob struct {
	cron    *cron.Cron
	tracker Tracker
	logger  *zap.Logger
}

func (r *resetJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := r.tracker.Reset(ctx); err != nil {
		r.logger.Error("scheduled quota reset failed", zap.Error(err))
	}
}

func (r *resetJob) Start() {
	r.cron.Start()
}

func (r *resetJob) Stop() {
	<-r.cron.Stop().Done()
}

func NewResetJob(schedule string, tracker Tracker, logger *zap.Logger) (ResetJob, error) {
	job := &resetJob{
		cron:    cron.New(),
		tracker: tracker,
		logger:  logger,
	}
	if _, err := job.cron.AddFunc(schedule, job.run); err != nil {
		return nil, err
	}
	return job, nil
}
