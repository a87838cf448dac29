// Package directory reads staff records from the authoritative LDAP directory.
//
// It wraps go-ldap to bind over ldaps as CN=<account>,<base OU> and to list the
// entries one level below the staff organizational unit.
//
// # Errors
//
//   - Unreachable server: *apperr.ServiceUnavailableError
//   - Invalid credentials (result code 49): *apperr.AuthenticationError
//
// # Certificate Validation
//
// Certificate validation is on unless Config.InsecureSkipVerify is set, which
// environments trusting an internal CA implicitly may need. A warning is
// logged whenever it is disabled.
//
// # Extraction
//
// ExtractNames turns member records into two NameSets using the first value
// of "department" and "physicalDeliveryOfficeName".
//
// # Usage
//
//	client, err := directory.Connect(cfg.Directory, log)
//	members, err := client.ListMembers(ctx, "")
//	_ = client.Close()
//	departments, buildings := directory.ExtractNames(members, log)
package directory
