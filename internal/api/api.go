package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gcsolar/usinas-backend/internal/api/controller"
	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
	"github.com/gcsolar/usinas-backend/internal/service/comparison"
	"github.com/gcsolar/usinas-backend/internal/service/metrics"
	"github.com/gcsolar/usinas-backend/internal/service/plants"
	"github.com/gcsolar/usinas-backend/internal/service/readings"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.JSONSerializer = NewSerializer()
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperKeyCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cntrl := controller.NewController(
		plants.NewService(st),
		readings.NewService(st),
		metrics.NewService(st),
		comparison.NewService(st),
		st,
	)

	svc.router.GET("/plants", cntrl.GetPlants)
	svc.router.POST("/plants", cntrl.CreatePlant)
	svc.router.GET("/readings", cntrl.GetReadings)
	svc.router.POST("/readings", cntrl.CreateReading)
	svc.router.GET("/metrics", cntrl.GetMetrics)
	svc.router.GET("/consortium-comparison", cntrl.GetConsortiumComparison)
	svc.router.GET("/consortia", cntrl.GetConsorcios)
	svc.router.GET("/distributors", cntrl.GetDistribuidoras)
	svc.router.POST("/export", cntrl.ExportPDF)
	svc.router.GET("/health", cntrl.Health)
	svc.router.GET("/debug", cntrl.Debug, svc.AdminMiddleware)

	return svc, nil
}
