package httpserver

import (
	alertHTTP "alert-srv/internal/alert/delivery/http"
	alertRepo "alert-srv/internal/alert/repository/postgre"
	alertUC "alert-srv/internal/alert/usecase"
	analyticsHTTP "alert-srv/internal/analytics/delivery/http"
	analyticsUC "alert-srv/internal/analytics/usecase"
	historyHTTP "alert-srv/internal/history/delivery/http"
	historyRepo "alert-srv/internal/history/repository/postgre"
	historyUC "alert-srv/internal/history/usecase"
	"alert-srv/internal/middleware"
	notificationHTTP "alert-srv/internal/notification/delivery/http"
	notificationUC "alert-srv/internal/notification/usecase"
	"alert-srv/internal/report"
	reportHTTP "alert-srv/internal/report/delivery/http"
	reportUC "alert-srv/internal/report/usecase"
	settingsHTTP "alert-srv/internal/settings/delivery/http"
	settingsRepo "alert-srv/internal/settings/repository/postgre"
	settingsUC "alert-srv/internal/settings/usecase"
	"alert-srv/internal/stock"
	stockHTTP "alert-srv/internal/stock/delivery/http"
	stockRepo "alert-srv/internal/stock/repository/postgre"
	stockUC "alert-srv/internal/stock/usecase"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "alert-srv/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api = "/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(gin.Logger(), middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.NewCORSConfig(srv.origins)))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories
	alertRepository := alertRepo.New(srv.l, srv.db)
	historyRepository := historyRepo.New(srv.l, srv.db)
	settingsRepository := settingsRepo.New(srv.l, srv.db)
	stockRepository := stockRepo.New(srv.l, srv.db)

	// Use cases
	settingsUseCase := settingsUC.New(srv.l, settingsRepository)
	notificationUseCase := notificationUC.New(srv.l, srv.redis, srv.discord, settingsUseCase, historyRepository)
	historyUseCase := historyUC.New(srv.l, historyRepository, notificationUseCase)
	alertUseCase := alertUC.New(srv.l, alertRepository, settingsUseCase)
	stockUseCase := stockUC.New(srv.l, stockRepository, historyUseCase, stock.Config{
		ItemTimeout: srv.monitorCfg.ItemTimeout,
		UrgentRatio: srv.monitorCfg.UrgentRatio,
	})
	analyticsUseCase := analyticsUC.New(srv.l, historyUseCase)
	reportUseCase := reportUC.New(srv.l, analyticsUseCase, historyUseCase, srv.minio, report.Config{
		Bucket:    srv.minioCfg.Bucket,
		URLExpiry: srv.minioCfg.URLExpiry,
	})

	// Handlers
	mw := middleware.New(srv.l, srv.jwtMgr, srv.cookieCfg)
	api := srv.gin.Group(Api)

	alertHTTP.New(srv.l, alertUseCase, srv.discord).RegisterRoutes(api, mw)
	historyHTTP.New(srv.l, historyUseCase, srv.discord).RegisterRoutes(api, mw)
	stockHTTP.New(srv.l, stockUseCase, srv.discord).RegisterRoutes(api, mw)
	analyticsHTTP.New(srv.l, analyticsUseCase, srv.discord).RegisterRoutes(api, mw)
	reportHTTP.New(srv.l, reportUseCase, srv.discord).RegisterRoutes(api, mw)
	settingsHTTP.New(srv.l, settingsUseCase, srv.discord).RegisterRoutes(api, mw)
	notificationHTTP.New(srv.l, notificationUseCase, srv.discord).RegisterRoutes(api, mw)

	return nil
}
