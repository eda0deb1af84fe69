package controller

import (
	"net/http"

	"github.com/gcsolar/usinas-backend/internal/service/comparison"
	"github.com/gcsolar/usinas-backend/internal/service/metrics"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetMetrics(ctx echo.Context) error {
	params := metrics.Params{
		UsinaID:             optInt64(ctx, "usinaId"),
		Consorcio:           optString(ctx, "consorcio"),
		Distribuidora:       optString(ctx, "distribuidora"),
		PotenciaSelecionada: optFloat(ctx, "potenciaSelecionada"),
	}
	params.DataInicio, params.DataFim = dateRange(ctx)

	snapshot, err := c.metrics.Compute(ctx.Request().Context(), params)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

func (c *Controller) GetConsortiumComparison(ctx echo.Context) error {
	params := comparison.Params{
		Consorcio:           optString(ctx, "consorcio"),
		Distribuidora:       optString(ctx, "distribuidora"),
		PotenciaSelecionada: optFloat(ctx, "potenciaSelecionada"),
	}
	params.DataInicio, params.DataFim = dateRange(ctx)

	summaries, err := c.comparison.Compare(ctx.Request().Context(), params)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summaries)
}
