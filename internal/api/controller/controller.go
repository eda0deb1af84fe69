package controller

import (
	"context"

	"github.com/gcsolar/usinas-backend/internal/pkg/store"
	"github.com/gcsolar/usinas-backend/internal/service/comparison"
	"github.com/gcsolar/usinas-backend/internal/service/metrics"
	"github.com/gcsolar/usinas-backend/internal/service/plants"
	"github.com/gcsolar/usinas-backend/internal/service/readings"
)

// OpsStore is what the operational endpoints need from the storage layer.
type OpsStore interface {
	Stats(ctx context.Context) (store.Stats, error)
	Ping(ctx context.Context) error
}

type Controller struct {
	plants     *plants.Service
	readings   *readings.Service
	metrics    *metrics.Service
	comparison *comparison.Service
	ops        OpsStore
}

func NewController(
	plantsSvc *plants.Service,
	readingsSvc *readings.Service,
	metricsSvc *metrics.Service,
	comparisonSvc *comparison.Service,
	ops OpsStore,
) *Controller {
	return &Controller{
		plants:     plantsSvc,
		readings:   readingsSvc,
		metrics:    metricsSvc,
		comparison: comparisonSvc,
		ops:        ops,
	}
}
