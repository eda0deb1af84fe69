package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
)

var geracoesColumns = []string{
	"id", "usina_id", "data", "energia_kwh", "ocorrencia", "clima", "created_at",
}

// ListReadings returns readings ordered by date ascending, each carrying its
// owning plant.
func (s *store) ListReadings(ctx context.Context, f ReadingFilter) ([]*domain.Reading, error) {
	query := applyWhere(
		builder().Select(geracoesColumns...).From(tableGeracoes),
		f.predicate(""),
	).OrderBy("data asc")

	var readings []*domain.Reading
	if err := s.pool.Selectx(ctx, &readings, query); err != nil {
		logger.Errorf(ctx, "ListReadings: %s", err.Error())
		return nil, wrapErr(err)
	}
	if len(readings) == 0 {
		return readings, nil
	}

	ids := make([]int64, 0, len(readings))
	seen := make(map[int64]bool, len(readings))
	for _, r := range readings {
		if !seen[r.UsinaID] {
			seen[r.UsinaID] = true
			ids = append(ids, r.UsinaID)
		}
	}

	plantsQuery := builder().Select(usinasColumns...).
		From(tableUsinas).
		Where(sq.Eq{"id": ids})

	var plants []*domain.Plant
	if err := s.pool.Selectx(ctx, &plants, plantsQuery); err != nil {
		logger.Errorf(ctx, "ListReadings plants: %s", err.Error())
		return nil, wrapErr(err)
	}
	byID := make(map[int64]*domain.Plant, len(plants))
	for _, p := range plants {
		byID[p.ID] = p
	}
	for _, r := range readings {
		r.Usina = byID[r.UsinaID]
	}

	return readings, nil
}

func (s *store) CreateReading(ctx context.Context, opts CreateReadingOpts) (*domain.Reading, error) {
	query := builder().Insert(tableGeracoes).
		Columns("usina_id", "data", "energia_kwh", "ocorrencia", "clima").
		Values(opts.UsinaID, opts.Data, opts.EnergiaKwh, opts.Ocorrencia, opts.Clima).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(geracoesColumns)))

	var created domain.Reading
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, wrapErr(err)
	}
	return &created, nil
}

// InsertReadingIgnoreConflict inserts unless a reading for the same
// (plant, date) already exists. Reports whether a row was written.
func (s *store) InsertReadingIgnoreConflict(ctx context.Context, opts CreateReadingOpts) (bool, error) {
	query := builder().Insert(tableGeracoes).
		Columns("usina_id", "data", "energia_kwh", "ocorrencia", "clima").
		Values(opts.UsinaID, opts.Data, opts.EnergiaKwh, opts.Ocorrencia, opts.Clima).
		Suffix("ON CONFLICT (usina_id, data) DO NOTHING")

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return false, wrapErr(err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListReadingPoints joins readings with their plants so the plant predicate
// also excludes readings of filtered-out plants.
func (s *store) ListReadingPoints(ctx context.Context, pf PlantFilter, rf ReadingFilter) ([]ReadingPoint, error) {
	query := builder().Select("g.energia_kwh", "g.data").
		From(tableGeracoes + " g").
		Join(tableUsinas + " u on u.id = g.usina_id")
	query = applyWhere(query, pf.predicate("u."))
	query = applyWhere(query, rf.predicate("g."))

	var points []ReadingPoint
	if err := s.pool.Selectx(ctx, &points, query); err != nil {
		logger.Errorf(ctx, "ListReadingPoints: %s", err.Error())
		return nil, wrapErr(err)
	}
	return points, nil
}

func (s *store) SumEnergia(ctx context.Context, pf PlantFilter, rf ReadingFilter) (float64, error) {
	query := builder().Select("coalesce(sum(g.energia_kwh), 0)").
		From(tableGeracoes + " g").
		Join(tableUsinas + " u on u.id = g.usina_id")
	query = applyWhere(query, pf.predicate("u."))
	query = applyWhere(query, rf.predicate("g."))

	var sum float64
	if err := s.pool.Getx(ctx, &sum, query); err != nil {
		return 0, wrapErr(err)
	}
	return sum, nil
}

func (s *store) Stats(ctx context.Context) (Stats, error) {
	query := builder().Select(
		fmt.Sprintf("(select count(*) from %s) as usinas", tableUsinas),
		fmt.Sprintf("(select count(*) from %s) as geracoes", tableGeracoes),
	)

	var stats Stats
	if err := s.pool.Getx(ctx, &stats, query); err != nil {
		return Stats{}, wrapErr(err)
	}
	return stats, nil
}
