// Package export renders the dashboard report as a PDF. Render is a pure
// function of the snapshot, the plant listing and the active filter; it
// performs no storage or network access.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/go-pdf/fpdf"
)

// Data is the export payload: the last-fetched snapshot, the plants it was
// rendered from and the filter that produced both.
type Data struct {
	Metricas domain.MetricsSnapshot `json:"metricas"`
	Usinas   []*domain.Plant        `json:"usinas"`
	Filtros  domain.Filter          `json:"filtros"`
}

const (
	marginMM = 20
	headerR  = 66
	headerG  = 139
	headerB  = 202
)

// Render lays the report out deterministically: title, generation timestamp,
// active filters, metrics table, per-plant table. Any renderer failure
// surfaces as an error; no partial document is returned.
func Render(data Data, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr("Relatório de Usinas Solares"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Gerado em: %s", now.Format("02/01/2006"))), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	renderFilters(pdf, tr, data)
	renderMetrics(pdf, tr, data.Metricas)
	renderPlants(pdf, tr, data.Usinas)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderFilters(pdf *fpdf.Fpdf, tr func(string) string, data Data) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Filtros Aplicados:"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	line := func(s string) {
		pdf.CellFormat(0, 5, tr(s), "", 1, "L", false, 0, "")
	}

	f := data.Filtros
	line(fmt.Sprintf("Período: %s", f.Periodo))
	line(fmt.Sprintf("Data Início: %s", f.DataInicio.Format("02/01/2006")))
	line(fmt.Sprintf("Data Fim: %s", f.DataFim.Format("02/01/2006")))
	if f.UsinaID != nil {
		nome := "N/A"
		for _, u := range data.Usinas {
			if u.ID == *f.UsinaID {
				nome = u.Nome
				break
			}
		}
		line(fmt.Sprintf("Usina: %s", nome))
	}
	if f.Consorcio != nil && *f.Consorcio != "" {
		line(fmt.Sprintf("Consórcio: %s", *f.Consorcio))
	}
	pdf.Ln(8)
}

func renderMetrics(pdf *fpdf.Fpdf, tr func(string) string, m domain.MetricsSnapshot) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Métricas Gerais:"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{85, 85}
	tableHeader(pdf, tr, widths, 10, []string{"Métrica", "Valor"})

	pdf.SetFont("Helvetica", "", 10)
	rows := [][]string{
		{"Total de Usinas", fmt.Sprintf("%d", m.TotalUsinas)},
		{"Potência Total", FormatPotencia(&m.PotenciaTotal)},
		{"Geração no Período", FormatEnergia(&m.EnergiaNoPeriodo)},
		{"Média Diária", FormatEnergia(&m.MediaGeracaoDiaria)},
		{"Crescimento", fmt.Sprintf("%.1f%%", m.CrescimentoNoPeriodo)},
		{"Total de Consórcios", fmt.Sprintf("%d", m.TotalConsorcios)},
	}
	for _, row := range rows {
		tableRow(pdf, tr, widths, 7, row)
	}
	pdf.Ln(10)
}

func renderPlants(pdf *fpdf.Fpdf, tr func(string) string, usinas []*domain.Plant) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Detalhes das Usinas:"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{45, 28, 28, 23, 28, 18}
	tableHeader(pdf, tr, widths, 8, []string{
		"Nome", "Distribuidora", "Consórcio", "Potência", "Geração Total", "Registros",
	})

	pdf.SetFont("Helvetica", "", 8)
	for _, u := range usinas {
		var total float64
		for _, g := range u.Geracoes {
			total += g.EnergiaKwh
		}
		tableRow(pdf, tr, widths, 6, []string{
			u.Nome,
			orNA(u.Distribuidora),
			orNA(u.Consorcio),
			FormatPotencia(u.Potencia),
			FormatEnergia(&total),
			fmt.Sprintf("%d", len(u.Geracoes)),
		})
	}
}

func tableHeader(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, h float64, cells []string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(headerR, headerG, headerB)
	pdf.SetTextColor(255, 255, 255)
	for i, c := range cells {
		pdf.CellFormat(widths[i], h, tr(c), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

func tableRow(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, h float64, cells []string) {
	for i, c := range cells {
		pdf.CellFormat(widths[i], h, tr(c), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// FormatEnergia scales kWh values into kWh/MWh/GWh for display.
func FormatEnergia(kwh *float64) string {
	if kwh == nil {
		return "N/A"
	}
	switch v := *kwh; {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1f GWh", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1f MWh", v/1_000)
	default:
		return fmt.Sprintf("%.1f kWh", v)
	}
}

// FormatPotencia scales kW values into kW/MW for display.
func FormatPotencia(kw *float64) string {
	if kw == nil {
		return "N/A"
	}
	if *kw >= 1000 {
		return fmt.Sprintf("%.1f MW", *kw/1000)
	}
	return fmt.Sprintf("%.1f kW", *kw)
}

func orNA(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}
