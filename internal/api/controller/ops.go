package controller

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
)

var startedAt = time.Now()

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"status":      "OK",
		"message":     "API está funcionando",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": viper.GetString(constants.ViperKeyEnvironment),
	})
}

// Debug reports storage connectivity, row counts, config presence and
// runtime info. Guarded by the admin middleware.
func (c *Controller) Debug(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	dbStatus := "ok"
	var dbError *string
	var stats any
	if err := c.ops.Ping(reqCtx); err != nil {
		dbStatus = "unavailable"
		msg := err.Error()
		dbError = &msg
	} else if s, err := c.ops.Stats(reqCtx); err != nil {
		dbStatus = "degraded"
		msg := err.Error()
		dbError = &msg
	} else {
		stats = map[string]int64{
			"usinas":   s.Usinas,
			"geracoes": s.Geracoes,
		}
	}

	configured := func(key string) string {
		if viper.GetString(key) != "" {
			return "definida"
		}
		return "não definida"
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"status": "DEBUG_INFO",
		"database": map[string]any{
			"status": dbStatus,
			"error":  dbError,
			"stats":  stats,
		},
		"environment": map[string]string{
			"environment":  viper.GetString(constants.ViperKeyEnvironment),
			"database_url": configured(constants.ViperKeyDatabaseURL),
			"admin_secret": configured(constants.ViperSecretKey),
		},
		"system": map[string]any{
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"goVersion":  runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
			"uptime":     time.Since(startedAt).String(),
		},
	})
}
