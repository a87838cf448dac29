package reconcile

import (
	"context"
	"fmt"

	"dirsync/core/apperr"
)

// ReconcileWithPlan lists every target and returns the plan that would make
// each mirror its source. It does NOT execute actions; use ApplyPlan for that.
// All listings complete before the plan is returned, so a failed listing
// aborts the run before any mutation.
func ReconcileWithPlan(ctx context.Context, specs ...Spec) (*ReconcilePlan, error) {
	plan := &ReconcilePlan{
		Diffs:   make([]Diff, 0, len(specs)),
		Summary: make([]KindSummary, 0, len(specs)),
	}

	for _, spec := range specs {
		kind := spec.Resource.Kind()

		target, err := spec.Resource.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list %ss: %w", kind, err)
		}

		diff := ComputeDiff(spec.Source, target)
		plan.Diffs = append(plan.Diffs, diff)

		for _, name := range diff.ToCreate {
			plan.Actions = append(plan.Actions, Action{
				Type:     ActionCreate,
				Kind:     kind,
				Name:     name,
				Resource: spec.Resource,
			})
		}
		for _, name := range diff.ToDelete {
			plan.Actions = append(plan.Actions, Action{
				Type:     ActionDelete,
				Kind:     kind,
				Name:     name,
				Resource: spec.Resource,
			})
		}

		plan.Summary = append(plan.Summary, KindSummary{
			Kind:        kind,
			SourceCount: len(buildSet(spec.Source)),
			TargetCount: len(target),
			ToCreate:    len(diff.ToCreate),
			ToDelete:    len(diff.ToDelete),
		})
	}

	return plan, nil
}

// ApplyPlan executes the actions in a reconcile plan, in order.
// Every action is attempted: a rejected mutation (apperr.ErrRejected) is
// recorded in the result and the next action runs. Any other error stops
// execution and is returned.
func ApplyPlan(ctx context.Context, plan *ReconcilePlan, opts ReconcileOptions) (ApplyResult, error) {
	var result ApplyResult

	if opts.DryRun {
		return result, nil
	}

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		var err error
		switch action.Type {
		case ActionCreate:
			err = action.Resource.Create(ctx, action.Name)
		case ActionDelete:
			err = action.Resource.Delete(ctx, action.Name)
		default:
			return result, fmt.Errorf("unknown action type %q", action.Type)
		}

		if err != nil {
			if apperr.IsFatal(err) {
				return result, fmt.Errorf("failed to %s %s %q: %w", action.Type, action.Kind, action.Name, err)
			}
			result.Failures = append(result.Failures, Failure{Action: action, Err: err})
			continue
		}
		result.Executed++
	}

	return result, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
func ReconcileAndApply(ctx context.Context, opts ReconcileOptions, specs ...Spec) (*ReconcilePlan, ApplyResult, error) {
	plan, err := ReconcileWithPlan(ctx, specs...)
	if err != nil {
		return nil, ApplyResult{}, err
	}

	result, err := ApplyPlan(ctx, plan, opts)
	return plan, result, err
}

// ReconcileResource brings a single resource in line with source.
func ReconcileResource(ctx context.Context, source []string, resource Resource, opts ReconcileOptions) (Diff, ApplyResult, error) {
	plan, result, err := ReconcileAndApply(ctx, opts, Spec{Resource: resource, Source: source})
	if plan == nil {
		return Diff{}, result, err
	}
	return plan.Diffs[0], result, err
}
