package comparison

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
)

type fakeStore struct {
	plants   []*domain.Plant
	err      error
	lastOpts store.ListPlantsOpts
}

func (f *fakeStore) ListPlants(_ context.Context, opts store.ListPlantsOpts) ([]*domain.Plant, error) {
	f.lastOpts = opts
	return f.plants, f.err
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func reading(kwh float64) *domain.Reading {
	return &domain.Reading{EnergiaKwh: kwh}
}

func TestCompareGroupsByConsortiumWithFallback(t *testing.T) {
	st := &fakeStore{plants: []*domain.Plant{
		{
			ID:        1,
			Nome:      "Usina A",
			Consorcio: strPtr("Consórcio X"),
			Potencia:  f64Ptr(100),
			Geracoes:  []*domain.Reading{reading(10), reading(20)},
		},
		{
			ID:            2,
			Nome:          "Usina B",
			Distribuidora: strPtr("Distribuidora Y"),
			Potencia:      f64Ptr(50),
			Geracoes:      []*domain.Reading{reading(5)},
		},
	}}
	svc := NewService(st)

	summaries, err := svc.Compare(context.Background(), Params{})
	require.NoError(t, err)
	require.Equal(t, []domain.ConsortiumSummary{
		{Consorcio: "Consórcio X", Potencia: 100, Geracao: 30},
		{Consorcio: "Distribuidora Y", Potencia: 50, Geracao: 5},
	}, summaries)
}

func TestCompareMergesPlantsSharingConsortium(t *testing.T) {
	st := &fakeStore{plants: []*domain.Plant{
		{ID: 1, Consorcio: strPtr("X"), Potencia: f64Ptr(10), Geracoes: []*domain.Reading{reading(1)}},
		{ID: 2, Geracoes: []*domain.Reading{reading(2)}},
		{ID: 3, Consorcio: strPtr("X"), Potencia: f64Ptr(15), Geracoes: []*domain.Reading{reading(3)}},
	}}
	svc := NewService(st)

	summaries, err := svc.Compare(context.Background(), Params{})
	require.NoError(t, err)
	require.Equal(t, []domain.ConsortiumSummary{
		{Consorcio: "X", Potencia: 25, Geracao: 4},
		{Consorcio: "Outros", Potencia: 0, Geracao: 2},
	}, summaries)
}

func TestComparePassesFiltersToStore(t *testing.T) {
	st := &fakeStore{}
	svc := NewService(st)

	inicio := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	consorcio := "X"

	summaries, err := svc.Compare(context.Background(), Params{
		DataInicio: &inicio,
		DataFim:    &fim,
		Consorcio:  &consorcio,
	})
	require.NoError(t, err)
	require.Empty(t, summaries)

	require.True(t, st.lastOpts.WithReadings)
	require.Equal(t, &inicio, st.lastOpts.From)
	require.Equal(t, &fim, st.lastOpts.To)
	require.Equal(t, &consorcio, st.lastOpts.Filter.Consorcio)
}

func TestComparePropagatesStoreError(t *testing.T) {
	st := &fakeStore{err: errors.New("connection refused")}
	svc := NewService(st)

	_, err := svc.Compare(context.Background(), Params{})
	require.Error(t, err)
}
