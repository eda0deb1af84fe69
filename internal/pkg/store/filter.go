package store

import (
	"time"

	"github.com/Masterminds/squirrel"
)

// PlantFilter holds the optional plant predicates. Absent fields are nil and
// impose no constraint.
type PlantFilter struct {
	UsinaID       *int64
	Consorcio     *string
	Distribuidora *string
	Potencia      *float64
}

// ReadingFilter holds the optional reading predicates. To is inclusive,
// Before exclusive; the growth aggregation uses Before for the previous
// window so a reading dated at the current start stays in the current period.
type ReadingFilter struct {
	UsinaID *int64
	From    *time.Time
	To      *time.Time
	Before  *time.Time
}

// predicate maps the filter to squirrel conditions on columns prefixed with
// prefix (e.g. "u."). Pure; returns nil when nothing is constrained.
func (f PlantFilter) predicate(prefix string) squirrel.And {
	var cond squirrel.And
	if f.UsinaID != nil {
		cond = append(cond, squirrel.Eq{prefix + "id": *f.UsinaID})
	}
	if f.Consorcio != nil {
		cond = append(cond, squirrel.Eq{prefix + "consorcio": *f.Consorcio})
	}
	if f.Distribuidora != nil {
		cond = append(cond, squirrel.Eq{prefix + "distribuidora": *f.Distribuidora})
	}
	if f.Potencia != nil {
		cond = append(cond, squirrel.Eq{prefix + "potencia": *f.Potencia})
	}
	if len(cond) == 0 {
		return nil
	}
	return cond
}

func (f ReadingFilter) predicate(prefix string) squirrel.And {
	var cond squirrel.And
	if f.UsinaID != nil {
		cond = append(cond, squirrel.Eq{prefix + "usina_id": *f.UsinaID})
	}
	if f.From != nil {
		cond = append(cond, squirrel.GtOrEq{prefix + "data": *f.From})
	}
	if f.To != nil {
		cond = append(cond, squirrel.LtOrEq{prefix + "data": *f.To})
	}
	if f.Before != nil {
		cond = append(cond, squirrel.Lt{prefix + "data": *f.Before})
	}
	if len(cond) == 0 {
		return nil
	}
	return cond
}

func applyWhere(q squirrel.SelectBuilder, cond squirrel.And) squirrel.SelectBuilder {
	if len(cond) == 0 {
		return q
	}
	return q.Where(cond)
}
