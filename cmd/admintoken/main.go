// Command admintoken mints the signed cookie value that grants access to the
// operational endpoints.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gcsolar/usinas-backend/internal/pkg/config"
	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
	"github.com/gcsolar/usinas-backend/internal/pkg/utils"
	"github.com/spf13/viper"
)

func main() {
	ctx := context.Background()

	if err := config.Init(); err != nil {
		logger.Fatal(ctx, err)
	}

	secret := viper.GetString(constants.ViperSecretKey)
	if secret == "" {
		logger.Fatal(ctx, "admin_secret is not configured")
	}

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: secret})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	fmt.Fprintf(os.Stdout, "%s=%s\n", constants.CookieKeyAdminToken, token)
}
