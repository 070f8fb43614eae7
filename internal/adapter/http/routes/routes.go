package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "gestao_compras/docs"
	"gestao_compras/internal/adapter/http/handlers"
	"gestao_compras/internal/adapter/http/middleware"
	"gestao_compras/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router *gin.Engine

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT or SIGTERM.
func Run(a *app.App) error {
	if a.Config.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router = gin.New()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(a)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(a.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("[http][server] listening", zap.Int("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the engine without starting it.
func NewRouter(a *app.App) *gin.Engine {
	router = gin.New()
	setMiddlewares()
	getRoutes(a)
	return router
}

func getRoutes(a *app.App) {
	uc := a.UseCases

	authHandler := handlers.NewAuthHandler(uc.Auth)
	setupHandler := handlers.NewSetupHandler(uc.Setup)
	requestHandler := handlers.NewRequestHandler(uc.Requests)
	catalogHandler := handlers.NewCatalogHandler(uc.Catalog)
	userHandler := handlers.NewUserHandler(uc.Users)
	supplierHandler := handlers.NewSupplierHandler(uc.Suppliers)
	priceMapHandler := handlers.NewPriceMapHandler(uc.PriceMaps)
	thermalHandler := handlers.NewThermalHandler(uc.Thermal)
	dashboardHandler := handlers.NewDashboardHandler(uc.Dashboard)
	reportHandler := handlers.NewReportHandler(uc.Reports)
	eventsHandler := handlers.NewEventsHandler(a.Notifier)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, setupHandler, middleware.JWTAuth(uc.Auth))

	// Rotas autenticadas
	private := v1.Group("", middleware.JWTAuth(uc.Auth))
	addRequestRoutes(private, requestHandler, dashboardHandler, reportHandler, eventsHandler)
	addCatalogRoutes(private, catalogHandler)
	addUserRoutes(private, userHandler)
	addProcurementRoutes(private, supplierHandler, priceMapHandler, thermalHandler)
}

func setMiddlewares() {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(zap.L()))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.L().Error("[http][server] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS())
}
