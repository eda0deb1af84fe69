package store

import (
	"context"
	"time"

	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	// plants
	ListPlants(ctx context.Context, opts ListPlantsOpts) ([]*domain.Plant, error)
	GetPlantByID(ctx context.Context, id int64) (*domain.Plant, error)
	CreatePlant(ctx context.Context, opts CreatePlantOpts) (*domain.Plant, error)
	CountPlants(ctx context.Context, f PlantFilter) (int64, error)
	SumPotencia(ctx context.Context, f PlantFilter) (float64, error)
	CountConsorcios(ctx context.Context, f PlantFilter) (int64, error)
	ListConsorcios(ctx context.Context) ([]string, error)
	ListDistribuidoras(ctx context.Context) ([]string, error)
	ListPlantNames(ctx context.Context) ([]PlantName, error)

	// readings
	ListReadings(ctx context.Context, f ReadingFilter) ([]*domain.Reading, error)
	CreateReading(ctx context.Context, opts CreateReadingOpts) (*domain.Reading, error)
	InsertReadingIgnoreConflict(ctx context.Context, opts CreateReadingOpts) (bool, error)
	ListReadingPoints(ctx context.Context, pf PlantFilter, rf ReadingFilter) ([]ReadingPoint, error)
	SumEnergia(ctx context.Context, pf PlantFilter, rf ReadingFilter) (float64, error)

	// operational
	Stats(ctx context.Context) (Stats, error)
	Ping(ctx context.Context) error
}

type ListPlantsOpts struct {
	Filter PlantFilter
	// WithReadings attaches each plant's readings, restricted to [From, To]
	// when both are set, ordered by date ascending.
	WithReadings bool
	From         *time.Time
	To           *time.Time
}

type CreatePlantOpts struct {
	Nome          string
	Distribuidora *string
	Consorcio     *string
	Potencia      *float64
	Latitude      *float64
	Longitude     *float64
}

type CreateReadingOpts struct {
	UsinaID    int64
	Data       time.Time
	EnergiaKwh float64
	Ocorrencia string
	Clima      string
}

// ReadingPoint is the slim projection the metrics aggregation works on.
type ReadingPoint struct {
	EnergiaKwh float64   `db:"energia_kwh"`
	Data       time.Time `db:"data"`
}

type PlantName struct {
	ID   int64  `db:"id"`
	Nome string `db:"nome"`
}

type Stats struct {
	Usinas   int64 `db:"usinas"`
	Geracoes int64 `db:"geracoes"`
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

func (s *store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
