package comparison

import (
	"context"
	"time"

	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
	"github.com/gcsolar/usinas-backend/internal/service/plants"
)

type Store interface {
	ListPlants(ctx context.Context, opts store.ListPlantsOpts) ([]*domain.Plant, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type Params struct {
	DataInicio          *time.Time
	DataFim             *time.Time
	Consorcio           *string
	Distribuidora       *string
	PotenciaSelecionada *float64
}

// Compare groups the matching plants by consortium label and sums installed
// power and period energy per group. Groups keep the order in which they were
// first seen; consumers re-sort for display.
func (s *Service) Compare(ctx context.Context, params Params) ([]domain.ConsortiumSummary, error) {
	usinas, err := s.store.ListPlants(ctx, store.ListPlantsOpts{
		Filter: store.PlantFilter{
			Consorcio:     params.Consorcio,
			Distribuidora: params.Distribuidora,
			Potencia:      params.PotenciaSelecionada,
		},
		WithReadings: true,
		From:         params.DataInicio,
		To:           params.DataFim,
	})
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(usinas))
	summaries := make([]domain.ConsortiumSummary, 0, len(usinas))
	for _, u := range usinas {
		label := plants.DisplayConsorcio(u)
		i, ok := index[label]
		if !ok {
			i = len(summaries)
			index[label] = i
			summaries = append(summaries, domain.ConsortiumSummary{Consorcio: label})
		}

		if u.Potencia != nil {
			summaries[i].Potencia += *u.Potencia
		}
		for _, g := range u.Geracoes {
			summaries[i].Geracao += g.EnergiaKwh
		}
	}

	return summaries, nil
}
