package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error"`
	// Format is the encoding (console or json).
	Format string `mapstructure:"format" default:"console" validate:"oneof=console json"`
}
