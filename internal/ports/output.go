package ports

import (
	"io"

	"shoppinglist-card/internal/types"
)

// ProjectionWriterPort writes a projection for display or further tooling.
type ProjectionWriterPort interface {
	WriteProjection(w io.Writer, projection types.Projection, format types.OutputFormat) error
}
