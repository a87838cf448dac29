package directory

// DefaultBaseOU is the staff container searched when none is configured.
const DefaultBaseOU = "OU=Staff,DC=yourorg,DC=corp"

// DefaultFilter matches every entry.
const DefaultFilter = "(objectClass=*)"

// Config holds configuration for the directory connection.
type Config struct {
	// Server is the directory URL, e.g. ldaps://dc01.yourorg.corp.
	Server string `mapstructure:"server" default:"" validate:"required,url"`
	// Account is the CN of the binding user; it is expected to live in BaseOU.
	Account string `mapstructure:"account" default:"" validate:"required"`
	// Password is the bind password.
	Password string `mapstructure:"password" default:"" validate:"required"`
	// BaseOU is the organizational unit holding staff records.
	BaseOU string `mapstructure:"base_ou" default:"OU=Staff,DC=yourorg,DC=corp" validate:"required"`
	// Filter is the search filter applied under BaseOU.
	Filter string `mapstructure:"filter" default:"(objectClass=*)" validate:"required"`
	// PageSize enables simple paged results when greater than zero.
	PageSize int `mapstructure:"page_size" default:"0" validate:"gte=0"`
	// InsecureSkipVerify disables certificate validation on the TLS channel.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" default:"false"`
	// TimeoutSeconds bounds each directory request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
