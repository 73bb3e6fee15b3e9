package constants

import "time"

const (
	// Server configuration keys (environment variables or pomolit.env)
	ConfigAddr                  = "POMOLIT_ADDR"
	ConfigEnvironment           = "POMOLIT_ENVIRONMENT"
	ConfigTimezone              = "POMOLIT_TIMEZONE"
	ConfigAllowedOrigins        = "POMOLIT_ALLOWED_ORIGINS"
	ConfigEvaluateInterval      = "POMOLIT_EVALUATE_INTERVAL"
	ConfigGuardDoubleCompletion = "POMOLIT_GUARD_DOUBLE_COMPLETION"
	ConfigDBConnection          = "POMOLIT_DB_CONNECTION"

	ConfigFileName = "pomolit.env"

	DefaultAddr        = "127.0.0.1:5001"
	DefaultEnvironment = "development"
	DefaultTimezone    = "UTC"

	EnvironmentProduction = "production"

	ShutdownTimeout = 30 * time.Second
)
