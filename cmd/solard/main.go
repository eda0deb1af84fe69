package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gcsolar/usinas-backend/internal/api"
	"github.com/gcsolar/usinas-backend/internal/pkg/config"
	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
	"github.com/gcsolar/usinas-backend/internal/pkg/store/xpgx"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	if err := config.Init(); err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Init(viper.GetString(constants.ViperKeyEnvironment))
	defer logger.Sync()

	dsn := viper.GetString(constants.ViperKeyDatabaseURL)
	if dsn == "" {
		logger.Fatal(ctx, "database_url is not configured")
	}

	pool, err := dialPool(ctx, dsn)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperKeyAddr))
	logger.Infof(ctx, "listening on %s", viper.GetString(constants.ViperKeyAddr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}

// dialPool retries the initial connection; the database may come up after us.
func dialPool(ctx context.Context, dsn string) (xpgx.Pool, error) {
	var pool xpgx.Pool
	err := backoff.Retry(
		func() error {
			p, err := xpgx.NewPool(ctx, dsn)
			if err != nil {
				logger.Warnf(ctx, "database not ready: %s", err.Error())
				return err
			}
			pool = p
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), 10),
			ctx,
		),
	)
	return pool, err
}
