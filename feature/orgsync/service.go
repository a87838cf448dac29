package orgsync

import (
	"context"
	"fmt"
	"io"

	"dirsync/core/directory"
	"dirsync/core/reconcile"

	"go.uber.org/zap"
)

// DirectoryReader is the part of *directory.Client the service needs.
type DirectoryReader interface {
	ListMembers(ctx context.Context, dn string) ([]directory.Member, error)
	BaseOU() string
	Close() error
}

// Connector opens a bound directory session.
type Connector func() (DirectoryReader, error)

// Service runs one directory-to-inventory sync.
type Service struct {
	connect   Connector
	inventory CollectionClient
	out       io.Writer
	logger    *zap.Logger
}

// Report describes a completed run.
type Report struct {
	Plan   *reconcile.ReconcilePlan
	Result reconcile.ApplyResult
}

// NewService creates a new sync service. Progress lines are written to out.
func NewService(connect Connector, inv CollectionClient, out io.Writer, logger *zap.Logger) *Service {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		connect:   connect,
		inventory: inv,
		out:       out,
		logger:    logger,
	}
}

// Run reads the directory, plans both resource kinds and applies the plan:
// department creates, department deletes, building creates, building deletes.
func (s *Service) Run(ctx context.Context, opts reconcile.ReconcileOptions) (*Report, error) {
	departments, buildings, err := s.readDirectory(ctx)
	if err != nil {
		return nil, err
	}

	specs := []reconcile.Spec{
		{Resource: NewDepartmentResource(s.inventory), Source: departments},
		{Resource: NewBuildingResource(s.inventory), Source: buildings},
	}

	plan, err := reconcile.ReconcileWithPlan(ctx, specs...)
	if err != nil {
		return nil, err
	}

	for _, summary := range plan.Summary {
		fmt.Fprintf(s.out, "%d %s(s) will be created and %d %s(s) will be deleted in the JSS\n",
			summary.ToCreate, summary.Kind, summary.ToDelete, summary.Kind)
		s.logger.Info("Planned changes",
			zap.String("kind", summary.Kind),
			zap.Int("source", summary.SourceCount),
			zap.Int("target", summary.TargetCount),
			zap.Int("to_create", summary.ToCreate),
			zap.Int("to_delete", summary.ToDelete),
		)
	}

	if opts.DryRun {
		for _, action := range plan.Actions {
			s.logger.Info("Dry-run action",
				zap.String("type", string(action.Type)),
				zap.String("kind", action.Kind),
				zap.String("name", action.Name),
			)
		}
		s.logger.Info("Dry-run mode: No changes were made.")
	}

	result, err := reconcile.ApplyPlan(ctx, plan, opts)
	for _, failure := range result.Failures {
		s.logger.Warn("Inventory rejected change",
			zap.String("type", string(failure.Action.Type)),
			zap.String("kind", failure.Action.Kind),
			zap.String("name", failure.Action.Name),
			zap.Error(failure.Err),
		)
	}
	if err != nil {
		return &Report{Plan: plan, Result: result}, fmt.Errorf("failed to apply plan: %w", err)
	}

	s.logger.Info("Sync finished",
		zap.Int("executed", result.Executed),
		zap.Int("rejected", len(result.Failures)),
	)
	fmt.Fprintln(s.out, "Done")

	return &Report{Plan: plan, Result: result}, nil
}

// readDirectory binds, lists the staff OU and releases the session before
// any inventory call is made.
func (s *Service) readDirectory(ctx context.Context) (departments, buildings []string, err error) {
	dir, err := s.connect()
	if err != nil {
		return nil, nil, err
	}

	fmt.Fprintf(s.out, "Reading accounts in %s in LDAP\n", dir.BaseOU())

	members, err := dir.ListMembers(ctx, "")
	if closeErr := dir.Close(); closeErr != nil {
		s.logger.Warn("Failed to unbind from directory", zap.Error(closeErr))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list directory members: %w", err)
	}

	deptSet, bldgSet := directory.ExtractNames(members, s.logger)
	return deptSet.Values(), bldgSet.Values(), nil
}
