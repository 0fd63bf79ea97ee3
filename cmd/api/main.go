package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "stockroom-backend/internal/adapter/http"
	"stockroom-backend/internal/adapter/middleware"
	"stockroom-backend/internal/adapter/repository/gormrepo"
	"stockroom-backend/internal/config"
	"stockroom-backend/internal/infrastructure/cache"
	"stockroom-backend/internal/infrastructure/db"
	"stockroom-backend/internal/reports"
	"stockroom-backend/internal/scheduler"
	checkoutuc "stockroom-backend/internal/usecase/checkout"
	dashboarduc "stockroom-backend/internal/usecase/dashboard"
	holderuc "stockroom-backend/internal/usecase/holder"
	materialuc "stockroom-backend/internal/usecase/material"
	stockuc "stockroom-backend/internal/usecase/stock"
	"stockroom-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	zlog := logger.Must(logger.New())
	defer func() { _ = zlog.Sync() }()

	if err := cfg.Validate(); err != nil {
		zlog.Fatal("invalid config", zap.Error(err))
	}

	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "mysql":
		gdb, err = db.OpenMySQL(cfg.MySQLDSN())
	default:
		gdb, err = db.OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		zlog.Fatal("open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		zlog.Fatal("migrate", zap.Error(err))
	}

	// repositories + unit of work
	holderRepo := gormrepo.NewHolderRepository(gdb)
	materialRepo := gormrepo.NewMaterialRepository(gdb)
	batchRepo := gormrepo.NewBatchRepository(gdb)
	withdrawalRepo := gormrepo.NewWithdrawalRepository(gdb)
	eventRepo := gormrepo.NewEventLogRepository(gdb)
	unit := gormrepo.NewGormUoW(gdb)

	// usecases
	holderUC := holderuc.NewUsecase(holderRepo, withdrawalRepo, unit)
	materialUC := materialuc.NewUsecase(materialRepo, batchRepo, withdrawalRepo, unit)
	stockUC := stockuc.NewUsecase(materialRepo, batchRepo, unit)
	checkoutUC := checkoutuc.NewUsecase(withdrawalRepo, unit)
	dashboardUC := dashboarduc.NewUsecase(materialRepo, stockUC, checkoutUC)
	reportBuilder := reports.NewBuilder(materialRepo, stockUC, dashboardUC)

	// handlers
	h := httpadp.NewHandler()
	holderH := httpadp.NewHolderHandler(holderUC)
	materialH := httpadp.NewMaterialHandler(materialUC)
	stockH := httpadp.NewStockHandler(stockUC, cfg.ExpiryWindowDays, cfg.ExpiringLimit)
	withdrawalH := httpadp.NewWithdrawalHandler(checkoutUC)
	dashboardH := httpadp.NewDashboardHandler(dashboardUC, cfg.ExpiryWindowDays, cfg.ExpiringLimit)
	eventH := httpadp.NewEventHandler(eventRepo)
	reportH := httpadp.NewReportHandler(reportBuilder)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// idempotency guard for mutating routes; skipped when no Redis configured
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			zlog.Fatal("open redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	// routes
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/holders", holderH.CreateHolder)
	e.GET("/holders", holderH.ListHolders)
	e.GET("/holders/:holder_id", holderH.GetHolder)
	e.PATCH("/holders/:holder_id", holderH.UpdateHolder)
	e.DELETE("/holders/:holder_id", holderH.DeleteHolder)
	e.GET("/holders/:holder_id/dependencies", holderH.HolderDependencies)
	e.GET("/holders/:holder_id/withdrawals", withdrawalH.ListByHolder)

	e.POST("/materials", materialH.CreateMaterial)
	e.GET("/materials", materialH.ListMaterials)
	e.GET("/materials/:material_id", materialH.GetMaterial)
	e.PATCH("/materials/:material_id", materialH.UpdateMaterial)
	e.DELETE("/materials/:material_id", materialH.DeleteMaterial)
	e.GET("/materials/:material_id/dependencies", materialH.MaterialDependencies)
	e.GET("/materials/:material_id/withdrawals", withdrawalH.ListByMaterial)
	e.POST("/materials/:material_id/batches", stockH.AddBatch)
	e.GET("/materials/:material_id/batches", stockH.ListBatches)
	e.GET("/materials/:material_id/stock", stockH.TotalStock)
	e.POST("/materials/:material_id/consume", stockH.ConsumeStock)

	e.GET("/stocks", stockH.TotalStocks)
	e.GET("/stocks/expiring", stockH.Expiring)
	e.GET("/stocks/low", stockH.LowStock)

	e.POST("/withdrawals/checkout", withdrawalH.Checkout)
	e.POST("/withdrawals/consume", withdrawalH.Consume)
	e.POST("/withdrawals/:withdrawal_id/return", withdrawalH.Return)
	e.GET("/withdrawals/active", withdrawalH.ListActive)

	e.GET("/dashboard", dashboardH.Overview)
	e.GET("/dashboard/damaged", dashboardH.DamagedEquipment)
	e.GET("/dashboard/equipment", dashboardH.Availability)

	e.GET("/events", eventH.ListEvents)
	e.GET("/reports/stock.xlsx", reportH.StockReport)

	// daily stock alert sweep
	sched := scheduler.New(stockUC, unit, cfg.AlertCron, cfg.ExpiryWindowDays, cfg.ExpiringLimit, logger.Named(zlog, "scheduler"))
	sched.Start()
	defer sched.Stop()

	addr := ":" + cfg.AppPort
	zlog.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
