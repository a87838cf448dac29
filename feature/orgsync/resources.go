package orgsync

import (
	"context"

	"dirsync/core/inventory"
	"dirsync/core/reconcile"
)

// CollectionClient is the part of *inventory.Client the resources need.
type CollectionClient interface {
	List(ctx context.Context, col inventory.Collection) ([]string, error)
	Create(ctx context.Context, col inventory.Collection, name string) error
	Delete(ctx context.Context, col inventory.Collection, name string) error
}

// CollectionResource exposes one inventory collection as a reconcile.Resource.
type CollectionResource struct {
	client     CollectionClient
	collection inventory.Collection
}

var _ reconcile.Resource = (*CollectionResource)(nil)

// NewDepartmentResource binds the department catalog.
func NewDepartmentResource(client CollectionClient) *CollectionResource {
	return &CollectionResource{client: client, collection: inventory.Departments}
}

// NewBuildingResource binds the building catalog.
func NewBuildingResource(client CollectionClient) *CollectionResource {
	return &CollectionResource{client: client, collection: inventory.Buildings}
}

func (r *CollectionResource) Kind() string {
	return r.collection.Element
}

func (r *CollectionResource) List(ctx context.Context) ([]string, error) {
	return r.client.List(ctx, r.collection)
}

func (r *CollectionResource) Create(ctx context.Context, name string) error {
	return r.client.Create(ctx, r.collection, name)
}

func (r *CollectionResource) Delete(ctx context.Context, name string) error {
	return r.client.Delete(ctx, r.collection, name)
}
