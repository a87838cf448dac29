// Package reconcile makes a target collection mirror an authoritative name set.
//
// The source always wins: names present only in the source are created in
// the target, names present only in the target are deleted from it.
//
// # Architecture
//
// 1. ComputeDiff: set difference in both directions, preserving input order.
//
// 2. Resource: the capability {Kind, List, Create, Delete} a target exposes.
//    One implementation per resource kind; the algorithm is shared.
//
// 3. Plan / Apply: ReconcileWithPlan lists every target and builds the ordered
//    actions (for each spec: creates, then deletes). ApplyPlan executes them.
//
// # Ordering
//
// Specs are processed in the order given, so passing departments before
// buildings yields: department creates, department deletes, building
// creates, building deletes. No atomicity is provided across the sequence.
//
// # Failure Handling
//
// Listing errors abort before any mutation. During apply, errors classed as
// apperr.ErrRejected are collected in ApplyResult.Failures and the run
// continues; anything else stops the run.
//
// # Usage Example
//
//	plan, err := reconcile.ReconcileWithPlan(ctx,
//	    reconcile.Spec{Resource: departments, Source: dirDepartments},
//	    reconcile.Spec{Resource: buildings, Source: dirBuildings},
//	)
//	result, err := reconcile.ApplyPlan(ctx, plan, reconcile.ReconcileOptions{})
package reconcile
