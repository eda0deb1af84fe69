package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gcsolar/usinas-backend/internal/service/export"
	"github.com/labstack/echo/v4"
)

// ExportPDF renders the client's last-fetched snapshot; the renderer itself
// touches no storage.
func (c *Controller) ExportPDF(ctx echo.Context) error {
	var data export.Data
	if err := ctx.Bind(&data); err != nil {
		return err
	}

	now := time.Now()
	document, err := export.Render(data, now)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("relatorio-usinas-%s.pdf", now.Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))

	return ctx.Blob(http.StatusOK, "application/pdf", document)
}
