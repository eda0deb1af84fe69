package main

import (
	"context"
	"flag"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gcsolar/usinas-backend/internal/importer"
	"github.com/gcsolar/usinas-backend/internal/pkg/config"
	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
	"github.com/gcsolar/usinas-backend/internal/pkg/store/xpgx"
	"github.com/spf13/viper"
)

func main() {
	path := flag.String("file", "planilha.xlsx", "spreadsheet with daily generation readings")
	flag.Parse()

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

	var pool xpgx.Pool
	err := backoff.Retry(
		func() error {
			p, err := xpgx.NewPool(ctx, dsn)
			if err != nil {
				return err
			}
			pool = p
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), 5),
			ctx,
		),
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	summary, err := importer.New(store.NewStore(pool)).Run(ctx, *path)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	logger.Infof(ctx, "import finished: %d sheets, %d inserted, %d already present, %d unmapped rows, %d invalid cells",
		summary.Sheets, summary.Inserted, summary.SkippedExisting, summary.SkippedUnmapped, summary.SkippedInvalid)
}
