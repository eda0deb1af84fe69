package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
)

var usinasColumns = []string{
	"id", "nome", "distribuidora", "consorcio",
	"potencia", "latitude", "longitude", "created_at", "updated_at",
}

func (s *store) ListPlants(ctx context.Context, opts ListPlantsOpts) ([]*domain.Plant, error) {
	query := applyWhere(
		builder().Select(usinasColumns...).From(tableUsinas),
		opts.Filter.predicate(""),
	).OrderBy("nome asc")

	var plants []*domain.Plant
	if err := s.pool.Selectx(ctx, &plants, query); err != nil {
		logger.Errorf(ctx, "ListPlants: %s", err.Error())
		return nil, wrapErr(err)
	}

	if !opts.WithReadings || len(plants) == 0 {
		return plants, nil
	}

	ids := make([]int64, 0, len(plants))
	byID := make(map[int64]*domain.Plant, len(plants))
	for _, p := range plants {
		ids = append(ids, p.ID)
		byID[p.ID] = p
		p.Geracoes = []*domain.Reading{}
	}

	readingsQuery := builder().Select(geracoesColumns...).
		From(tableGeracoes).
		Where(sq.Eq{"usina_id": ids}).
		OrderBy("data asc")
	if opts.From != nil && opts.To != nil {
		readingsQuery = readingsQuery.Where(sq.And{
			sq.GtOrEq{"data": *opts.From},
			sq.LtOrEq{"data": *opts.To},
		})
	}

	var readings []*domain.Reading
	if err := s.pool.Selectx(ctx, &readings, readingsQuery); err != nil {
		logger.Errorf(ctx, "ListPlants readings: %s", err.Error())
		return nil, wrapErr(err)
	}
	for _, r := range readings {
		if p, ok := byID[r.UsinaID]; ok {
			p.Geracoes = append(p.Geracoes, r)
		}
	}

	return plants, nil
}

func (s *store) GetPlantByID(ctx context.Context, id int64) (*domain.Plant, error) {
	query := builder().Select(usinasColumns...).
		From(tableUsinas).
		Where(sq.Eq{"id": id})

	var plant domain.Plant
	if err := s.pool.Getx(ctx, &plant, query); err != nil {
		return nil, wrapErr(err)
	}
	return &plant, nil
}

func (s *store) CreatePlant(ctx context.Context, opts CreatePlantOpts) (*domain.Plant, error) {
	query := builder().Insert(tableUsinas).
		Columns("nome", "distribuidora", "consorcio", "potencia", "latitude", "longitude").
		Values(opts.Nome, opts.Distribuidora, opts.Consorcio, opts.Potencia, opts.Latitude, opts.Longitude).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(usinasColumns)))

	var created domain.Plant
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, wrapErr(err)
	}
	return &created, nil
}

func (s *store) CountPlants(ctx context.Context, f PlantFilter) (int64, error) {
	query := applyWhere(
		builder().Select("count(*)").From(tableUsinas),
		f.predicate(""),
	)

	var count int64
	if err := s.pool.Getx(ctx, &count, query); err != nil {
		return 0, wrapErr(err)
	}
	return count, nil
}

func (s *store) SumPotencia(ctx context.Context, f PlantFilter) (float64, error) {
	query := applyWhere(
		builder().Select("coalesce(sum(potencia), 0)").From(tableUsinas),
		f.predicate(""),
	)

	var sum float64
	if err := s.pool.Getx(ctx, &sum, query); err != nil {
		return 0, wrapErr(err)
	}
	return sum, nil
}

// CountConsorcios counts distinct non-empty consortium labels among matching
// plants, plus one shared "Outros" bucket when any matching plant lacks one.
func (s *store) CountConsorcios(ctx context.Context, f PlantFilter) (int64, error) {
	query := applyWhere(
		builder().Select(
			`count(distinct consorcio) filter (where consorcio is not null and consorcio <> '') as named`,
			`count(*) filter (where consorcio is null or consorcio = '') as unlabeled`,
		).From(tableUsinas),
		f.predicate(""),
	)

	var row struct {
		Named     int64 `db:"named"`
		Unlabeled int64 `db:"unlabeled"`
	}
	if err := s.pool.Getx(ctx, &row, query); err != nil {
		return 0, wrapErr(err)
	}
	total := row.Named
	if row.Unlabeled > 0 {
		total++
	}
	return total, nil
}

func (s *store) ListConsorcios(ctx context.Context) ([]string, error) {
	return s.listDistinct(ctx, "consorcio")
}

func (s *store) ListDistribuidoras(ctx context.Context) ([]string, error) {
	return s.listDistinct(ctx, "distribuidora")
}

func (s *store) listDistinct(ctx context.Context, column string) ([]string, error) {
	query := builder().Select(fmt.Sprintf("distinct %s", column)).
		From(tableUsinas).
		Where(sq.NotEq{column: nil}).
		Where(sq.NotEq{column: ""}).
		OrderBy(fmt.Sprintf("%s asc", column))

	var values []string
	if err := s.pool.Selectx(ctx, &values, query); err != nil {
		logger.Errorf(ctx, "listDistinct %s: %s", column, err.Error())
		return nil, wrapErr(err)
	}
	return values, nil
}

func (s *store) ListPlantNames(ctx context.Context) ([]PlantName, error) {
	query := builder().Select("id", "nome").From(tableUsinas)

	var names []PlantName
	if err := s.pool.Selectx(ctx, &names, query); err != nil {
		return nil, wrapErr(err)
	}
	return names, nil
}
