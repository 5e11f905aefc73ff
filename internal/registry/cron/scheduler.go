package cronjob

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
	"github.com/propadmin/prop-admin-backend/internal/registry/service"
)

const dateLayout = "2006-01-02"

// Scheduler rolls contract rent-update dates forward. Contracts carry a
// nextUpdateDate and an update frequency in months; once the date passes,
// the nightly job advances it so the owner sees the upcoming adjustment.
type Scheduler struct {
	registry *service.Registry
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewScheduler(registry *service.Registry, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		registry: registry,
		logger:   logger,
	}
}

// Start initializes the cron tasks (nightly at 12:00AM).
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.RollContractUpdates(context.Background(), time.Now())
	})
	if err != nil {
		return err
	}

	s.cron = c
	c.Start()
	s.logger.Info("contract update scheduler started")
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// RollContractUpdates advances nextUpdateDate on every active contract
// whose date has passed. Unparsable or unset dates are skipped; a contract
// with no update frequency is left alone.
func (s *Scheduler) RollContractUpdates(ctx context.Context, now time.Time) {
	contracts, err := s.registry.ActiveContracts(ctx)
	if err != nil {
		s.logger.Error("failed to load active contracts", zap.Error(err))
		return
	}

	for _, contract := range contracts {
		next, ok := nextUpdate(contract, now)
		if !ok {
			continue
		}

		contract.NextUpdateDate = next.Format(dateLayout)
		if err := s.registry.UpdateContract(ctx, &contract); err != nil {
			s.logger.Error("failed to roll contract update date",
				zap.String("contract_id", contract.ID),
				zap.Error(err),
			)
			continue
		}

		s.logger.Info("contract update date rolled",
			zap.String("contract_id", contract.ID),
			zap.String("property_id", contract.PropertyID),
			zap.String("next_update", contract.NextUpdateDate),
		)
	}
}

// nextUpdate returns the first update date after now, stepping by the
// contract's frequency, or ok=false when the contract needs no roll.
func nextUpdate(contract domain.TenantContract, now time.Time) (time.Time, bool) {
	if contract.UpdateFrequencyMonths <= 0 || contract.NextUpdateDate == "" {
		return time.Time{}, false
	}
	next, err := time.Parse(dateLayout, contract.NextUpdateDate)
	if err != nil {
		return time.Time{}, false
	}
	if !next.Before(now) {
		return time.Time{}, false
	}
	for !next.After(now) {
		next = next.AddDate(0, contract.UpdateFrequencyMonths, 0)
	}
	return next, true
}
