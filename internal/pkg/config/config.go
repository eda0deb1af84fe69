package config

import (
	"strings"

	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/spf13/viper"
)

// Init wires viper: defaults, optional config.yaml next to the binary and
// environment variables (DATABASE_URL, ADDR, ...). Env wins over file.
func Init() error {
	viper.SetDefault(constants.ViperKeyAddr, ":8080")
	viper.SetDefault(constants.ViperKeyEnvironment, "development")
	viper.SetDefault(constants.ViperKeyCORSOrigin, "http://localhost:3000")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return err
		}
	}

	return nil
}
