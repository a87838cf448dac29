package reconcile

// Spec pairs a target resource with the authoritative names it must mirror.
type Spec struct {
	// Resource is the target collection.
	Resource Resource

	// Source is the authoritative name set, in first-seen order.
	Source []string
}

// Diff is the outcome of comparing a source name set with a target name set.
type Diff struct {
	// ToCreate holds source names missing from the target, in source order.
	ToCreate []string `json:"to_create"`

	// ToDelete holds target names missing from the source, in target order.
	ToDelete []string `json:"to_delete"`
}

// Empty reports whether the diff requires no action.
func (d Diff) Empty() bool {
	return len(d.ToCreate) == 0 && len(d.ToDelete) == 0
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCreate creates a record in the target.
	ActionCreate ActionType = "create"
	// ActionDelete deletes a record from the target.
	ActionDelete ActionType = "delete"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Kind is the resource kind the action applies to.
	Kind string `json:"kind"`

	// Name is the record name.
	Name string `json:"name"`

	// Resource executes the action.
	Resource Resource `json:"-"`
}

// KindSummary provides aggregate counts for one resource kind.
type KindSummary struct {
	// Kind is the resource kind.
	Kind string `json:"kind"`

	// SourceCount is the number of distinct authoritative names.
	SourceCount int `json:"source_count"`

	// TargetCount is the number of names listed from the target.
	TargetCount int `json:"target_count"`

	// ToCreate counts planned create actions.
	ToCreate int `json:"to_create"`

	// ToDelete counts planned delete actions.
	ToDelete int `json:"to_delete"`
}

// ReconcilePlan contains the per-kind diffs and the ordered actions.
type ReconcilePlan struct {
	// Diffs holds one diff per spec, in spec order.
	Diffs []Diff `json:"diffs"`

	// Actions contains planned mutations in execution order.
	Actions []Action `json:"actions"`

	// Summary holds one entry per spec, in spec order.
	Summary []KindSummary `json:"summary"`
}

// ReconcileOptions controls apply behavior.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool
}

// Failure records a non-fatal mutation error.
type Failure struct {
	Action Action
	Err    error
}

// ApplyResult reports what ApplyPlan did.
type ApplyResult struct {
	// Executed counts actions that completed without error.
	Executed int

	// Failures lists actions the server rejected. The run continued past them.
	Failures []Failure
}
