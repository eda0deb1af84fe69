package controller

import (
	"net/http"

	"github.com/gcsolar/usinas-backend/internal/pkg/store"
	"github.com/gcsolar/usinas-backend/internal/service/plants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetPlants(ctx echo.Context) error {
	opts := store.ListPlantsOpts{
		Filter: store.PlantFilter{
			Consorcio:     optString(ctx, "consorcio"),
			Distribuidora: optString(ctx, "distribuidora"),
			Potencia:      optFloat(ctx, "potenciaSelecionada"),
		},
		WithReadings: ctx.QueryParam("includeGeracoes") == "true",
	}
	opts.From, opts.To = dateRange(ctx)

	usinas, err := c.plants.List(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, usinas)
}

type createPlantRequest struct {
	Nome          string  `json:"nome" validate:"required"`
	Distribuidora *string `json:"distribuidora"`
	Consorcio     *string `json:"consorcio"`
	Potencia      any     `json:"potencia"`
	Latitude      any     `json:"latitude"`
	Longitude     any     `json:"longitude"`
}

func (c *Controller) CreatePlant(ctx echo.Context) error {
	var req createPlantRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	usina, err := c.plants.Create(ctx.Request().Context(), plants.CreateParams{
		Nome:          req.Nome,
		Distribuidora: req.Distribuidora,
		Consorcio:     req.Consorcio,
		Potencia:      toFloat(req.Potencia),
		Latitude:      toFloat(req.Latitude),
		Longitude:     toFloat(req.Longitude),
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, usina)
}

func (c *Controller) GetConsorcios(ctx echo.Context) error {
	values, err := c.plants.ListConsorcios(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, values)
}

func (c *Controller) GetDistribuidoras(ctx echo.Context) error {
	values, err := c.plants.ListDistribuidoras(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, values)
}
