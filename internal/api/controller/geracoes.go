package controller

import (
	"net/http"

	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
	"github.com/gcsolar/usinas-backend/internal/service/readings"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetReadings(ctx echo.Context) error {
	filter := store.ReadingFilter{
		UsinaID: optInt64(ctx, "usinaId"),
	}
	filter.From, filter.To = dateRange(ctx)

	geracoes, err := c.readings.List(ctx.Request().Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, geracoes)
}

type createReadingRequest struct {
	UsinaID    any    `json:"usinaId"`
	Data       string `json:"data"`
	EnergiaKwh any    `json:"energiaKwh"`
	Ocorrencia string `json:"ocorrencia"`
}

func (c *Controller) CreateReading(ctx echo.Context) error {
	var req createReadingRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.UsinaID == nil || req.Data == "" || req.EnergiaKwh == nil || req.Ocorrencia == "" {
		return constants.NewCodedError(http.StatusBadRequest, "todos os campos são obrigatórios")
	}

	usinaID := toInt64(req.UsinaID)
	if usinaID == nil {
		return constants.NewCodedError(http.StatusBadRequest, "usinaId inválido")
	}
	data, err := parseDate(req.Data)
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "data inválida")
	}
	energia := toFloat(req.EnergiaKwh)
	if energia == nil {
		return constants.NewCodedError(http.StatusBadRequest, "energiaKwh inválida")
	}

	geracao, err := c.readings.Create(ctx.Request().Context(), readings.CreateParams{
		UsinaID:    *usinaID,
		Data:       data,
		EnergiaKwh: *energia,
		Ocorrencia: req.Ocorrencia,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, geracao)
}
