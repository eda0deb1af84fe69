package readings

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
)

type fakeStore struct {
	plant     *domain.Plant
	plantErr  error
	created   *domain.Reading
	createErr error
	lastOpts  store.CreateReadingOpts
}

func (f *fakeStore) ListReadings(context.Context, store.ReadingFilter) ([]*domain.Reading, error) {
	return nil, nil
}

func (f *fakeStore) CreateReading(_ context.Context, opts store.CreateReadingOpts) (*domain.Reading, error) {
	f.lastOpts = opts
	return f.created, f.createErr
}

func (f *fakeStore) GetPlantByID(context.Context, int64) (*domain.Plant, error) {
	return f.plant, f.plantErr
}

func codedFrom(t *testing.T, err error) *constants.CodedError {
	t.Helper()
	var coded *constants.CodedError
	require.ErrorAs(t, err, &coded)
	return coded
}

func TestCreateRejectsNegativeEnergy(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Create(context.Background(), CreateParams{UsinaID: 1, EnergiaKwh: -1})
	coded := codedFrom(t, err)
	require.Equal(t, http.StatusBadRequest, coded.Code())
}

func TestCreateUnknownPlant(t *testing.T) {
	st := &fakeStore{plantErr: constants.ErrDBNotFound}
	svc := NewService(st)

	_, err := svc.Create(context.Background(), CreateParams{UsinaID: 99, EnergiaKwh: 10})
	coded := codedFrom(t, err)
	require.Equal(t, http.StatusNotFound, coded.Code())
	require.Equal(t, "usina não encontrada", coded.Error())
}

func TestCreateDuplicateDate(t *testing.T) {
	st := &fakeStore{
		plant:     &domain.Plant{ID: 1},
		createErr: constants.ErrDBConflict,
	}
	svc := NewService(st)

	_, err := svc.Create(context.Background(), CreateParams{UsinaID: 1, EnergiaKwh: 10})
	coded := codedFrom(t, err)
	require.Equal(t, http.StatusConflict, coded.Code())
	require.Equal(t, "já existe uma geração para esta usina nesta data", coded.Error())
}

func TestCreateOK(t *testing.T) {
	data := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	st := &fakeStore{
		plant:   &domain.Plant{ID: 1},
		created: &domain.Reading{ID: 7, UsinaID: 1, Data: data, EnergiaKwh: 123.4},
	}
	svc := NewService(st)

	created, err := svc.Create(context.Background(), CreateParams{
		UsinaID:    1,
		Data:       data,
		EnergiaKwh: 123.4,
		Ocorrencia: "manutenção",
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), created.ID)
	require.Equal(t, "manutenção", st.lastOpts.Ocorrencia)
	require.Empty(t, st.lastOpts.Clima)
}

func TestCreateAllowsZeroEnergy(t *testing.T) {
	st := &fakeStore{
		plant:   &domain.Plant{ID: 1},
		created: &domain.Reading{ID: 8, UsinaID: 1},
	}
	svc := NewService(st)

	_, err := svc.Create(context.Background(), CreateParams{UsinaID: 1, EnergiaKwh: 0})
	require.NoError(t, err)
}
