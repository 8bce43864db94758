package config

// EnvPrefix is the namespace applied by envconfig when binding variables.
const EnvPrefix = "MINISHOP"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "MINISHOP_APP_ENV"
	EnvDBDSN  = "MINISHOP_DB_DSN"
	EnvDBHost = "MINISHOP_DB_HOST"
	EnvDBUser = "MINISHOP_DB_USER"
	EnvDBName = "MINISHOP_DB_NAME"
)

var componentDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
