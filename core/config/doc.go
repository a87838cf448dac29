// Package config provides configuration management for dirsync.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section's Config type.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Directory: LDAP server, bind account, base OU, TLS verification
//   - Inventory: MDM API URL and credentials
//   - Log: Logging level and format
//
// Environment variables map to nested keys by replacing "." with "_",
// e.g. DIRECTORY_BASE_OU sets directory.base_ou.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	// ... fill blanks interactively ...
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
