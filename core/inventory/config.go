package inventory

// Config holds configuration for the inventory API.
type Config struct {
	// URL is the server root, e.g. https://jss.yourorg.corp:8443.
	URL string `mapstructure:"url" default:"" validate:"required,url"`
	// Username is the API account.
	Username string `mapstructure:"username" default:"" validate:"required"`
	// Password is the API password.
	Password string `mapstructure:"password" default:"" validate:"required"`
	// TimeoutSeconds is the connection and response-header timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
