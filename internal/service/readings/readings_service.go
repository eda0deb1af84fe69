package readings

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
)

type Store interface {
	ListReadings(ctx context.Context, f store.ReadingFilter) ([]*domain.Reading, error)
	CreateReading(ctx context.Context, opts store.CreateReadingOpts) (*domain.Reading, error)
	GetPlantByID(ctx context.Context, id int64) (*domain.Plant, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, f store.ReadingFilter) ([]*domain.Reading, error) {
	return s.store.ListReadings(ctx, f)
}

type CreateParams struct {
	UsinaID    int64
	Data       time.Time
	EnergiaKwh float64
	Ocorrencia string
}

// Create validates the owning plant exists before inserting; the storage
// uniqueness constraint turns duplicate (plant, date) pairs into conflicts.
func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Reading, error) {
	if params.EnergiaKwh < 0 {
		return nil, constants.NewCodedError(http.StatusBadRequest, "energiaKwh não pode ser negativa")
	}

	if _, err := s.store.GetPlantByID(ctx, params.UsinaID); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.NewCodedError(http.StatusNotFound, "usina não encontrada")
		}
		logger.Errorf(ctx, "GetPlantByID: %s", err.Error())
		return nil, err
	}

	created, err := s.store.CreateReading(ctx, store.CreateReadingOpts{
		UsinaID:    params.UsinaID,
		Data:       params.Data,
		EnergiaKwh: params.EnergiaKwh,
		Ocorrencia: params.Ocorrencia,
		Clima:      "",
	})
	if err != nil {
		if errors.Is(err, constants.ErrDBConflict) {
			return nil, constants.NewCodedError(http.StatusConflict, "já existe uma geração para esta usina nesta data")
		}
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.NewCodedError(http.StatusNotFound, "usina não encontrada")
		}
		logger.Errorf(ctx, "CreateReading: %s", err.Error())
		return nil, err
	}

	return created, nil
}
