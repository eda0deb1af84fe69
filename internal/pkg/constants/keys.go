package constants

// viper keys
const (
	ViperKeyDatabaseURL = "database_url"
	ViperKeyAddr        = "addr"
	ViperKeyEnvironment = "environment"
	ViperKeyCORSOrigin  = "cors_origin"
	ViperSecretKey      = "admin_secret"
)

const CookieKeyAdminToken = "admin_token"

type ctxKey string

// CtxKeyRequestID carries the request id attached by the api middleware.
const CtxKeyRequestID ctxKey = "request_id"
