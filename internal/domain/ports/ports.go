// Package ports defines interfaces for the loader boundary.
// Consumers depend on these abstractions, adapters implement them.
package ports

import (
	"context"

	"github.com/0xcro3dile/chatlog-loader/internal/domain/entities"
)

// DocumentLoader turns an already-resident source into documents.
// Any type with a Load method of this shape is a loader; there is no base type.
type DocumentLoader interface {
	// Load converts the whole source in order. It either returns one
	// document per source record or an error and no documents.
	Load(ctx context.Context) ([]entities.Document, error)
}
