// Package embedding provides text embedding generation for candidate and job documents.
package embedding

import "context"

// Embedder is an abstraction over embedding providers. Implementations must be
// deterministic for identical input and produce vectors of a fixed dimension
// per deployment.
type Embedder interface {
	// Embed maps text to a fixed-length vector.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the embedder.
	Close() error
}
