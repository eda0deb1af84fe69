package domain

import "time"

type Period string

const (
	PeriodDiario Period = "diario"
	PeriodMensal Period = "mensal"
	PeriodAnual  Period = "anual"
	PeriodCustom Period = "custom"
)

// Filter is the client-held query state. It is replaced wholesale on every
// interaction and only travels over the wire (query params, export body).
type Filter struct {
	Periodo             Period    `json:"periodo"`
	DataInicio          time.Time `json:"dataInicio"`
	DataFim             time.Time `json:"dataFim"`
	UsinaID             *int64    `json:"usinaId,omitempty"`
	Distribuidora       *string   `json:"distribuidora,omitempty"`
	Consorcio           *string   `json:"consorcio,omitempty"`
	PotenciaSelecionada *float64  `json:"potenciaSelecionada,omitempty"`
}

// DefaultFilter covers the current calendar month of now.
func DefaultFilter(now time.Time) Filter {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-24 * time.Hour)
	return Filter{
		Periodo:    PeriodMensal,
		DataInicio: start,
		DataFim:    end,
	}
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
