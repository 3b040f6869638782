package index

import "errors"

// Sentinel kinds for index errors.
var (
	// ErrNotFitted is returned when Transform is called on an index with
	// an empty vocabulary.
	ErrNotFitted = errors.New("index not fitted")

	// ErrEmptyVocabulary is returned by Fit when no term survives
	// stop-word removal and document-frequency pruning.
	ErrEmptyVocabulary = errors.New("empty vocabulary")
)
