// Package inventory is a client for the department and building catalogs of
// a JSS-style MDM REST API.
//
// All endpoints live under <url>/JSSResource and exchange XML:
//
//	GET    /departments              list
//	POST   /departments/id/0         create (server assigns the ID)
//	DELETE /departments/name/<name>  delete by name
//
// Buildings use the same shapes under /buildings.
//
// # Errors
//
// Listing fails hard: a body that is not well-formed XML yields
// *apperr.MalformedResponseError, a 401 yields *apperr.AuthenticationError and
// any other non-2xx yields *apperr.StatusError. Create and delete report a
// non-2xx as *apperr.StatusError, which callers treat as a warning.
//
// # Usage
//
//	client := inventory.NewClient(cfg.Inventory, os.Stdout, log)
//	names, err := client.ListDepartments(ctx)
//	err = client.CreateDepartment(ctx, "Sales")
package inventory
