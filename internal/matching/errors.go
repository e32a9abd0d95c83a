package matching

import "fmt"

// ConfigError indicates an invalid scoring configuration, such as a weight
// profile whose weights do not sum to 1. It is raised at construction time,
// never mid-scoring.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("matching configuration error: %s", e.Reason)
}

// RetrievalError wraps a failure of the retrieval store or embedder. It aborts
// the whole match request, unlike per-candidate scoring errors which only skip
// one hit.
type RetrievalError struct {
	Cause error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("candidate retrieval failed: %v", e.Cause)
}

func (e *RetrievalError) Unwrap() error {
	return e.Cause
}
