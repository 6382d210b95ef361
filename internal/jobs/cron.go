package jobs

import (
	"context"
	"fmt"
	"time"

	"anoa.com/schoolregistry/pkg/logger"
	"github.com/robfig/cron/v3"
)

const cleanupTimeout = 5 * time.Minute

// AvatarCleaner removes avatars left behind by deleted students.
type AvatarCleaner interface {
	CleanupOrphanAvatars(ctx context.Context) (int, error)
}

// CronManager runs the background maintenance jobs.
type CronManager struct {
	cron     *cron.Cron
	cleaner  AvatarCleaner
	schedule string
}

// NewCronManager expects a six field schedule (seconds first).
func NewCronManager(cleaner AvatarCleaner, schedule string) *CronManager {
	return &CronManager{
		cron:     cron.New(cron.WithSeconds()),
		cleaner:  cleaner,
		schedule: schedule,
	}
}

func (m *CronManager) Start() error {
	if _, err := m.cron.AddFunc(m.schedule, m.RunAvatarCleanup); err != nil {
		return fmt.Errorf("invalid avatar cleanup schedule %q: %w", m.schedule, err)
	}

	m.cron.Start()
	logger.Info().Str("schedule", m.schedule).Msg("cron jobs started")
	return nil
}

// Stop waits for running jobs to finish.
func (m *CronManager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("cron jobs stopped")
}

func (m *CronManager) RunAvatarCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	start := time.Now()
	removed, err := m.cleaner.CleanupOrphanAvatars(ctx)
	if err != nil {
		logger.Error().Err(err).Int("removed", removed).Msg("orphan avatar cleanup failed")
		return
	}
	logger.Info().
		Int("removed", removed).
		Dur("took", time.Since(start)).
		Msg("orphan avatar cleanup completed")
}
