package plants

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
)

// fallbackConsorcio labels plants that have neither consortium nor
// distributor set.
const fallbackConsorcio = "Outros"

type Store interface {
	ListPlants(ctx context.Context, opts store.ListPlantsOpts) ([]*domain.Plant, error)
	CreatePlant(ctx context.Context, opts store.CreatePlantOpts) (*domain.Plant, error)
	ListConsorcios(ctx context.Context) ([]string, error)
	ListDistribuidoras(ctx context.Context) ([]string, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns plants ordered by name, with the consortium label defaulted to
// the distributor, else "Outros", so every returned plant carries one.
func (s *Service) List(ctx context.Context, opts store.ListPlantsOpts) ([]*domain.Plant, error) {
	plants, err := s.store.ListPlants(ctx, opts)
	if err != nil {
		return nil, err
	}

	for _, p := range plants {
		label := DisplayConsorcio(p)
		p.Consorcio = &label
	}

	return plants, nil
}

type CreateParams struct {
	Nome          string
	Distribuidora *string
	Consorcio     *string
	Potencia      *float64
	Latitude      *float64
	Longitude     *float64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Plant, error) {
	if strings.TrimSpace(params.Nome) == "" {
		return nil, constants.NewCodedError(http.StatusBadRequest, "nome da usina é obrigatório")
	}

	created, err := s.store.CreatePlant(ctx, store.CreatePlantOpts{
		Nome:          params.Nome,
		Distribuidora: emptyToNil(params.Distribuidora),
		Consorcio:     emptyToNil(params.Consorcio),
		Potencia:      params.Potencia,
		Latitude:      params.Latitude,
		Longitude:     params.Longitude,
	})
	if err != nil {
		if errors.Is(err, constants.ErrDBConflict) {
			return nil, constants.NewCodedError(http.StatusConflict, "já existe uma usina com este nome")
		}
		logger.Errorf(ctx, "CreatePlant: %s", err.Error())
		return nil, err
	}

	return created, nil
}

func (s *Service) ListConsorcios(ctx context.Context) ([]string, error) {
	return s.store.ListConsorcios(ctx)
}

func (s *Service) ListDistribuidoras(ctx context.Context) ([]string, error) {
	return s.store.ListDistribuidoras(ctx)
}

// DisplayConsorcio resolves the label a plant is reported and grouped under:
// its consortium, else its distributor, else "Outros".
func DisplayConsorcio(p *domain.Plant) string {
	if p.Consorcio != nil && *p.Consorcio != "" {
		return *p.Consorcio
	}
	if p.Distribuidora != nil && *p.Distribuidora != "" {
		return *p.Distribuidora
	}
	return fallbackConsorcio
}

func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
