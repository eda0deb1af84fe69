package plants

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
)

type fakeStore struct {
	plants    []*domain.Plant
	created   *domain.Plant
	createErr error
	lastOpts  store.CreatePlantOpts
}

func (f *fakeStore) ListPlants(context.Context, store.ListPlantsOpts) ([]*domain.Plant, error) {
	return f.plants, nil
}

func (f *fakeStore) CreatePlant(_ context.Context, opts store.CreatePlantOpts) (*domain.Plant, error) {
	f.lastOpts = opts
	return f.created, f.createErr
}

func (f *fakeStore) ListConsorcios(context.Context) ([]string, error) {
	return []string{"Consórcio X"}, nil
}

func (f *fakeStore) ListDistribuidoras(context.Context) ([]string, error) {
	return []string{"Distribuidora Y"}, nil
}

func strPtr(s string) *string { return &s }

func TestListFillsConsortiumLabel(t *testing.T) {
	st := &fakeStore{plants: []*domain.Plant{
		{ID: 1, Nome: "A", Consorcio: strPtr("Consórcio X")},
		{ID: 2, Nome: "B", Distribuidora: strPtr("Distribuidora Y")},
		{ID: 3, Nome: "C"},
	}}
	svc := NewService(st)

	plants, err := svc.List(context.Background(), store.ListPlantsOpts{})
	require.NoError(t, err)
	require.Len(t, plants, 3)
	require.Equal(t, "Consórcio X", *plants[0].Consorcio)
	require.Equal(t, "Distribuidora Y", *plants[1].Consorcio)
	require.Equal(t, "Outros", *plants[2].Consorcio)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Create(context.Background(), CreateParams{Nome: "   "})
	require.Error(t, err)

	var coded *constants.CodedError
	require.ErrorAs(t, err, &coded)
	require.Equal(t, http.StatusBadRequest, coded.Code())
	require.Equal(t, "nome da usina é obrigatório", coded.Error())
}

func TestCreateMapsConflictToDuplicateName(t *testing.T) {
	st := &fakeStore{createErr: constants.ErrDBConflict}
	svc := NewService(st)

	_, err := svc.Create(context.Background(), CreateParams{Nome: "Usina A"})
	require.Error(t, err)

	var coded *constants.CodedError
	require.ErrorAs(t, err, &coded)
	require.Equal(t, http.StatusConflict, coded.Code())
	require.Equal(t, "já existe uma usina com este nome", coded.Error())
}

func TestCreateNormalizesEmptyOptionalStrings(t *testing.T) {
	st := &fakeStore{created: &domain.Plant{ID: 1, Nome: "Usina A"}}
	svc := NewService(st)

	created, err := svc.Create(context.Background(), CreateParams{
		Nome:          "Usina A",
		Distribuidora: strPtr(""),
		Consorcio:     strPtr("Consórcio X"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Nil(t, st.lastOpts.Distribuidora)
	require.Equal(t, "Consórcio X", *st.lastOpts.Consorcio)
}

func TestCreatePropagatesUnknownError(t *testing.T) {
	st := &fakeStore{createErr: errors.New("connection refused")}
	svc := NewService(st)

	_, err := svc.Create(context.Background(), CreateParams{Nome: "Usina A"})
	require.EqualError(t, err, "connection refused")
}
