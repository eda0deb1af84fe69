package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gcsolar/usinas-backend/internal/domain"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestRenderProducesPDF(t *testing.T) {
	usinaID := int64(1)
	data := Data{
		Metricas: domain.MetricsSnapshot{
			TotalUsinas:          2,
			PotenciaTotal:        150,
			EnergiaNoPeriodo:     1234.5,
			MediaGeracaoDiaria:   61.7,
			CrescimentoNoPeriodo: 12.3,
			TotalConsorcios:      2,
		},
		Usinas: []*domain.Plant{
			{
				ID:        1,
				Nome:      "Usina São João",
				Consorcio: strPtr("Consórcio X"),
				Potencia:  f64Ptr(100),
				Geracoes:  []*domain.Reading{{EnergiaKwh: 500}, {EnergiaKwh: 734.5}},
			},
			{ID: 2, Nome: "Usina B", Distribuidora: strPtr("Distribuidora Y"), Potencia: f64Ptr(50)},
		},
		Filtros: domain.Filter{
			Periodo:    domain.PeriodMensal,
			DataInicio: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DataFim:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			UsinaID:    &usinaID,
		},
	}

	out, err := Render(data, time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, len(out) > 1000)
	require.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderEmptyData(t *testing.T) {
	out, err := Render(Data{}, time.Now())
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(out[:4]))
}

func TestFormatEnergia(t *testing.T) {
	require.Equal(t, "N/A", FormatEnergia(nil))
	require.Equal(t, "500.0 kWh", FormatEnergia(f64Ptr(500)))
	require.Equal(t, "1.5 MWh", FormatEnergia(f64Ptr(1500)))
	require.Equal(t, "2.5 GWh", FormatEnergia(f64Ptr(2_500_000)))
}

func TestFormatPotencia(t *testing.T) {
	require.Equal(t, "N/A", FormatPotencia(nil))
	require.Equal(t, "75.0 kW", FormatPotencia(f64Ptr(75)))
	require.Equal(t, "1.2 MW", FormatPotencia(f64Ptr(1200)))
}
