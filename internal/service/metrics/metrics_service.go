package metrics

import (
	"context"
	"math"
	"time"

	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Store interface {
	CountPlants(ctx context.Context, f store.PlantFilter) (int64, error)
	SumPotencia(ctx context.Context, f store.PlantFilter) (float64, error)
	CountConsorcios(ctx context.Context, f store.PlantFilter) (int64, error)
	ListReadingPoints(ctx context.Context, pf store.PlantFilter, rf store.ReadingFilter) ([]store.ReadingPoint, error)
	SumEnergia(ctx context.Context, pf store.PlantFilter, rf store.ReadingFilter) (float64, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type Params struct {
	UsinaID             *int64
	DataInicio          *time.Time
	DataFim             *time.Time
	Consorcio           *string
	Distribuidora       *string
	PotenciaSelecionada *float64
}

// Compute derives the full metrics snapshot for the filter. The three base
// aggregates run concurrently; growth needs the current-period energy and so
// runs after them.
func (s *Service) Compute(ctx context.Context, params Params) (*domain.MetricsSnapshot, error) {
	pf := store.PlantFilter{
		UsinaID:       params.UsinaID,
		Consorcio:     params.Consorcio,
		Distribuidora: params.Distribuidora,
		Potencia:      params.PotenciaSelecionada,
	}
	rf := store.ReadingFilter{
		UsinaID: params.UsinaID,
		From:    params.DataInicio,
		To:      params.DataFim,
	}

	var totalUsinas int64

	// A consortium filter that matches nothing answers an all-zero snapshot
	// without touching the other tables.
	if pf.Consorcio != nil {
		count, err := s.store.CountPlants(ctx, pf)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return &domain.MetricsSnapshot{}, nil
		}
		totalUsinas = count
	}

	var (
		potenciaTotal float64
		points        []store.ReadingPoint
	)

	eg, egCtx := errgroup.WithContext(ctx)
	if pf.Consorcio == nil {
		eg.Go(func() error {
			var err error
			totalUsinas, err = s.store.CountPlants(egCtx, pf)
			return err
		})
	}
	eg.Go(func() error {
		var err error
		potenciaTotal, err = s.store.SumPotencia(egCtx, pf)
		return err
	})
	eg.Go(func() error {
		var err error
		points, err = s.store.ListReadingPoints(egCtx, pf, rf)
		return err
	})
	if err := eg.Wait(); err != nil {
		logger.Errorf(ctx, "metrics aggregation: %s", err.Error())
		return nil, err
	}

	var energiaNoPeriodo float64
	dates := make(map[string]struct{}, len(points))
	for _, p := range points {
		energiaNoPeriodo += p.EnergiaKwh
		dates[p.Data.Format("2006-01-02")] = struct{}{}
	}

	var mediaGeracaoDiaria float64
	if len(dates) > 0 {
		mediaGeracaoDiaria = energiaNoPeriodo / float64(len(dates))
	}

	crescimento, err := s.growth(ctx, params, pf, energiaNoPeriodo, len(points))
	if err != nil {
		logger.Errorf(ctx, "growth aggregation: %s", err.Error())
		return nil, err
	}

	totalConsorcios, err := s.store.CountConsorcios(ctx, pf)
	if err != nil {
		logger.Errorf(ctx, "CountConsorcios: %s", err.Error())
		return nil, err
	}

	return &domain.MetricsSnapshot{
		TotalUsinas:          totalUsinas,
		PotenciaTotal:        potenciaTotal,
		EnergiaNoPeriodo:     energiaNoPeriodo,
		MediaGeracaoDiaria:   mediaGeracaoDiaria,
		CrescimentoNoPeriodo: crescimento,
		TotalConsorcios:      totalConsorcios,
	}, nil
}

// growth compares the period's energy against an equal-length window
// immediately before it. The previous window ends at the current start,
// end-exclusive: a reading dated exactly at the start belongs to the current
// period. Zero when the previous window produced nothing.
func (s *Service) growth(ctx context.Context, params Params, pf store.PlantFilter, energiaAtual float64, matched int) (float64, error) {
	if params.DataInicio == nil || params.DataFim == nil || matched == 0 {
		return 0, nil
	}

	inicio := *params.DataInicio
	fim := *params.DataFim
	days := int64(math.Ceil(fim.Sub(inicio).Hours() / 24))
	if days <= 0 {
		return 0, nil
	}

	prevInicio := inicio.Add(-time.Duration(days) * 24 * time.Hour)
	prevRF := store.ReadingFilter{
		UsinaID: params.UsinaID,
		From:    &prevInicio,
		Before:  &inicio,
	}

	energiaAnterior, err := s.store.SumEnergia(ctx, pf, prevRF)
	if err != nil {
		return 0, err
	}
	if energiaAnterior <= 0 {
		return 0, nil
	}

	crescimento := (energiaAtual - energiaAnterior) / energiaAnterior * 100
	return decimal.NewFromFloat(crescimento).Round(2).InexactFloat64(), nil
}
