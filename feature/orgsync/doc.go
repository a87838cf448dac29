// Package orgsync keeps the inventory's department and building catalogs in
// line with the staff directory.
//
// It binds the core pieces together:
//   - directory.Client supplies member records and ExtractNames turns them into name sets
//   - CollectionResource exposes each inventory collection as a reconcile.Resource
//   - Service.Run plans both kinds, then applies departments before buildings
//
// The directory session is closed before the inventory is contacted.
//
// # Usage
//
//	svc := orgsync.NewService(connect, inventoryClient, os.Stdout, log)
//	report, err := svc.Run(ctx, reconcile.ReconcileOptions{})
package orgsync
