package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakePool records the SQL the store builds and answers through hooks.
type fakePool struct {
	queries []string

	onGetx    func(dest any) error
	onSelectx func(dest any) error
	execTag   pgconn.CommandTag
	execErr   error
}

func (f *fakePool) record(q squirrel.Sqlizer) error {
	sql, _, err := q.ToSql()
	if err != nil {
		return err
	}
	f.queries = append(f.queries, sql)
	return nil
}

func (f *fakePool) Getx(_ context.Context, dest any, q squirrel.Sqlizer) error {
	if err := f.record(q); err != nil {
		return err
	}
	if f.onGetx != nil {
		return f.onGetx(dest)
	}
	return nil
}

func (f *fakePool) Selectx(_ context.Context, dest any, q squirrel.Sqlizer) error {
	if err := f.record(q); err != nil {
		return err
	}
	if f.onSelectx != nil {
		return f.onSelectx(dest)
	}
	return nil
}

func (f *fakePool) Execx(_ context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	if err := f.record(q); err != nil {
		return pgconn.CommandTag{}, err
	}
	return f.execTag, f.execErr
}

func (f *fakePool) Ping(context.Context) error { return nil }
func (f *fakePool) Close()                     {}

func TestListPlantsQueryShape(t *testing.T) {
	pool := &fakePool{}
	s := NewStore(pool)

	_, err := s.ListPlants(context.Background(), ListPlantsOpts{
		Filter: PlantFilter{Consorcio: strPtr("X"), Potencia: f64Ptr(100)},
	})
	require.NoError(t, err)
	require.Len(t, pool.queries, 1)
	require.Equal(t,
		"SELECT id, nome, distribuidora, consorcio, potencia, latitude, longitude, created_at, updated_at "+
			"FROM usinas WHERE (consorcio = $1 AND potencia = $2) ORDER BY nome asc",
		pool.queries[0])
}

func TestListPlantsUnfilteredHasNoWhere(t *testing.T) {
	pool := &fakePool{}
	s := NewStore(pool)

	_, err := s.ListPlants(context.Background(), ListPlantsOpts{})
	require.NoError(t, err)
	require.Len(t, pool.queries, 1)
	require.NotContains(t, pool.queries[0], "WHERE")
}

func TestCountConsorciosBucketsUnlabeledPlants(t *testing.T) {
	setCounts := func(named, unlabeled int64) func(dest any) error {
		return func(dest any) error {
			v := reflect.ValueOf(dest).Elem()
			v.FieldByName("Named").SetInt(named)
			v.FieldByName("Unlabeled").SetInt(unlabeled)
			return nil
		}
	}

	t.Run("only labeled consortiums", func(t *testing.T) {
		pool := &fakePool{onGetx: setCounts(3, 0)}
		total, err := NewStore(pool).CountConsorcios(context.Background(), PlantFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(3), total)
	})

	t.Run("unlabeled plants add one shared bucket", func(t *testing.T) {
		pool := &fakePool{onGetx: setCounts(3, 5)}
		total, err := NewStore(pool).CountConsorcios(context.Background(), PlantFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(4), total)
	})
}

func TestSumEnergiaJoinsPlantsForPlantPredicate(t *testing.T) {
	pool := &fakePool{}
	s := NewStore(pool)

	_, err := s.SumEnergia(context.Background(), PlantFilter{Consorcio: strPtr("X")}, ReadingFilter{})
	require.NoError(t, err)
	require.Len(t, pool.queries, 1)
	require.Contains(t, pool.queries[0], "JOIN usinas u on u.id = g.usina_id")
	require.Contains(t, pool.queries[0], "u.consorcio = $1")
}

func TestInsertReadingIgnoreConflict(t *testing.T) {
	t.Run("inserted", func(t *testing.T) {
		pool := &fakePool{execTag: pgconn.NewCommandTag("INSERT 0 1")}
		inserted, err := NewStore(pool).InsertReadingIgnoreConflict(context.Background(), CreateReadingOpts{})
		require.NoError(t, err)
		require.True(t, inserted)
		require.Contains(t, pool.queries[0], "ON CONFLICT (usina_id, data) DO NOTHING")
	})

	t.Run("already present", func(t *testing.T) {
		pool := &fakePool{execTag: pgconn.NewCommandTag("INSERT 0 0")}
		inserted, err := NewStore(pool).InsertReadingIgnoreConflict(context.Background(), CreateReadingOpts{})
		require.NoError(t, err)
		require.False(t, inserted)
	})
}
