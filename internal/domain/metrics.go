package domain

// MetricsSnapshot is recomputed in full on every request; it is never stored.
type MetricsSnapshot struct {
	TotalUsinas          int64   `json:"totalUsinas"`
	PotenciaTotal        float64 `json:"potenciaTotal"`
	EnergiaNoPeriodo     float64 `json:"energiaNoPeriodo"`
	MediaGeracaoDiaria   float64 `json:"mediaGeracaoDiaria"`
	CrescimentoNoPeriodo float64 `json:"crescimentoNoPeriodo"`
	TotalConsorcios      int64   `json:"totalConsorcios"`
}

// ConsortiumSummary is one bar of the comparative chart: installed power and
// generated energy summed over the plants grouped under one consortium label.
type ConsortiumSummary struct {
	Consorcio string  `json:"consorcio"`
	Potencia  float64 `json:"potencia"`
	Geracao   float64 `json:"geracao"`
}
