package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SecureLDAPScheme is prepended to directory servers given without a scheme.
const SecureLDAPScheme = "ldaps://"

// DeriveAccountName guesses the directory CN from an inventory login using the
// first.last convention: "jane.doe" -> "Jane Doe", "admin" -> "Admin".
// ok is false when the login has more than two dot-separated parts or is empty,
// in which case the caller has to ask for the account explicitly.
func DeriveAccountName(username string) (name string, ok bool) {
	if username == "" {
		return "", false
	}

	title := cases.Title(language.Und)
	parts := strings.Split(username, ".")

	switch len(parts) {
	case 1:
		return title.String(parts[0]), true
	case 2:
		return title.String(parts[0]) + " " + title.String(parts[1]), true
	default:
		return "", false
	}
}

// NormalizeServerURL prefixes server with ldaps:// when it carries no scheme.
func NormalizeServerURL(server string) string {
	server = strings.TrimSpace(server)
	if server == "" || strings.Contains(server, "://") {
		return server
	}
	return SecureLDAPScheme + server
}
