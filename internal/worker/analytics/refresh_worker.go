package analytics

import (
	"context"
	"time"

	"github.com/campus-mobility-service/internal/config"
	"github.com/campus-mobility-service/internal/usecase"
	"github.com/campus-mobility-service/internal/worker"
	"go.uber.org/zap"
)

// RefreshWorker периодически пересчитывает аналитические отчеты и
// прогревает кеш, чтобы запросы API не ждали тяжелых выборок
type RefreshWorker struct {
	*worker.BaseWorker
	activityUC *usecase.ActivityUseCase
	demandUC   *usecase.DemandUseCase
	cfg        *config.Config
}

// NewRefreshWorker создает воркер прогрева аналитического кеша
func NewRefreshWorker(
	activityUC *usecase.ActivityUseCase,
	demandUC *usecase.DemandUseCase,
	cfg *config.Config,
	logger *zap.Logger,
) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker: worker.NewBaseWorker("analytics-refresh", logger),
		activityUC: activityUC,
		demandUC:   demandUC,
		cfg:        cfg,
	}
}

// Start запускает цикл периодического обновления
func (w *RefreshWorker) Start(ctx context.Context) error {
	interval := w.cfg.Worker.RefreshInterval
	w.Logger().Info("Analytics refresh worker started", zap.Duration("interval", interval))

	// Первый прогрев сразу при старте
	w.refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger().Info("Analytics refresh worker context cancelled")
			return ctx.Err()
		case <-w.StopChan():
			w.Logger().Info("Analytics refresh worker stopped")
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, w.cfg.Worker.RefreshInterval)
	defer cancel()

	if _, err := w.activityUC.RefreshRealTimeStats(refreshCtx); err != nil {
		w.Logger().Error("Failed to refresh real-time stats", zap.Error(err))
	}

	if _, err := w.demandUC.RefreshDemandPatterns(refreshCtx, w.cfg.Analytics.DemandDaysBack); err != nil {
		w.Logger().Error("Failed to refresh demand patterns", zap.Error(err))
	}

	w.Logger().Debug("Analytics cache refreshed")
}
