// Package catalog provides storage for item catalogs
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-gearset/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
)

// Repository defines the interface for catalog persistence
type Repository interface {
	// Get retrieves a catalog by name, preserving record order
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if the catalog does not exist
	// Returns errors.DataLoss if stored records cannot be decoded
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a catalog, replacing any catalog with the same name
	// Returns errors.InvalidArgument for an empty name or invalid records
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// List returns the names of every stored catalog in sorted order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a catalog
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a catalog
type GetOutput struct {
	Name  string
	Items []gear.Item
}

// PutInput defines the input for storing a catalog
type PutInput struct {
	Name  string
	Items []gear.Item
}

// PutOutput defines the output for storing a catalog
type PutOutput struct {
	Name  string
	Count int
}

// ListInput defines the input for listing catalogs
type ListInput struct{}

// ListOutput defines the output for listing catalogs
type ListOutput struct {
	Names []string
}
