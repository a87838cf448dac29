package reconcile

import "context"

// Resource is one target collection that can be listed and mutated by name.
// Each kind kept in sync (e.g. departments, buildings) gets its own Resource.
type Resource interface {
	// Kind returns the singular name of the resource (e.g., "department").
	Kind() string

	// List returns every name currently present in the target, in server order.
	// An error must be returned rather than a partial list.
	List(ctx context.Context) ([]string, error)

	// Create adds a record named name to the target.
	Create(ctx context.Context, name string) error

	// Delete removes the record named name from the target.
	Delete(ctx context.Context, name string) error
}

// ResourceFuncs adapts plain functions to Resource.
type ResourceFuncs struct {
	KindName   string
	ListFunc   func(ctx context.Context) ([]string, error)
	CreateFunc func(ctx context.Context, name string) error
	DeleteFunc func(ctx context.Context, name string) error
}

func (r ResourceFuncs) Kind() string { return r.KindName }

func (r ResourceFuncs) List(ctx context.Context) ([]string, error) { return r.ListFunc(ctx) }

func (r ResourceFuncs) Create(ctx context.Context, name string) error {
	return r.CreateFunc(ctx, name)
}

func (r ResourceFuncs) Delete(ctx context.Context, name string) error {
	return r.DeleteFunc(ctx, name)
}
