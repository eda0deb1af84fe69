package utils

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "segredo-de-teste")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	raw, err := GenerateAuthToken(&AuthTokenWrapper{Secret: "segredo-de-teste"})
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	parsed, err := ParseAuthToken(raw)
	require.NoError(t, err)
	require.Equal(t, "segredo-de-teste", parsed.Secret)
}

func TestParseAuthTokenRejectsGarbage(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "segredo-de-teste")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	_, err := ParseAuthToken("not-a-token")
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestParseAuthTokenRejectsWrongKey(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "chave-a")
	raw, err := GenerateAuthToken(&AuthTokenWrapper{Secret: "chave-a"})
	require.NoError(t, err)

	viper.Set(constants.ViperSecretKey, "chave-b")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	_, err = ParseAuthToken(raw)
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}
