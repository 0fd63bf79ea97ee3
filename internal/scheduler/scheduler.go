// Package scheduler runs the periodic stock alert sweep.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"stockroom-backend/internal/domain/eventlog"
	"stockroom-backend/internal/domain/uow"
	"stockroom-backend/internal/usecase/stock"
	"stockroom-backend/pkg/id"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron             *cron.Cron
	stockUC          *stock.Usecase
	uow              uow.UnitOfWork
	spec             string
	expiryWindowDays int
	expiringLimit    int
	logger           *zap.Logger
}

func New(stockUC *stock.Usecase, tx uow.UnitOfWork, spec string, expiryWindowDays, expiringLimit int, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:             cron.New(),
		stockUC:          stockUC,
		uow:              tx,
		spec:             spec,
		expiryWindowDays: expiryWindowDays,
		expiringLimit:    expiringLimit,
		logger:           logger,
	}
}

// Start schedules the sweep. An empty cron spec disables it.
func (s *Scheduler) Start() {
	if s.spec == "" {
		s.logger.Info("alert sweep disabled")
		return
	}
	s.logger.Info("starting scheduler", zap.String("spec", s.spec))

	_, err := s.cron.AddFunc(s.spec, s.sweep)
	if err != nil {
		s.logger.Error("failed to schedule alert sweep", zap.Error(err))
		return
	}
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

// sweep records one audit event per low-stock consumable and per lot
// expiring within the window.
func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	low, err := s.stockUC.LowStock(ctx)
	if err != nil {
		s.logger.Error("alert sweep: low stock query failed", zap.Error(err))
		return
	}
	expiring, err := s.stockUC.Expiring(ctx, s.expiryWindowDays, s.expiringLimit)
	if err != nil {
		s.logger.Error("alert sweep: expiring query failed", zap.Error(err))
		return
	}
	if len(low) == 0 && len(expiring) == 0 {
		s.logger.Info("alert sweep: nothing to report")
		return
	}

	err = s.uow.WithinTx(ctx, func(r uow.Repos) error {
		for _, l := range low {
			details := fmt.Sprintf("material=%d total=%d min=%d", l.MaterialID, l.TotalStock, l.MinStock)
			if err := r.Events.Append(ctx, &eventlog.Event{
				EventID:     id.NewID32(),
				EventType:   eventlog.StockAlert,
				Description: fmt.Sprintf("low stock for %q", l.Denomination),
				Details:     &details,
			}); err != nil {
				return err
			}
		}
		for _, e := range expiring {
			details := fmt.Sprintf("material=%d batch=%d expiration=%s amount=%d",
				e.MaterialID, e.Batch.ID, e.Batch.Expiration.Format("2006-01-02"), e.Batch.Amount)
			if err := r.Events.Append(ctx, &eventlog.Event{
				EventID:     id.NewID32(),
				EventType:   eventlog.StockAlert,
				Description: fmt.Sprintf("lot of %q near expiration", e.Material),
				Details:     &details,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("alert sweep: appending events failed", zap.Error(err))
		return
	}
	s.logger.Info("alert sweep done",
		zap.Int("low_stock", len(low)),
		zap.Int("expiring", len(expiring)))
}
