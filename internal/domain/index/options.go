package index

// Option applies a configuration option to the Vectorizer.
type Option func(*Vectorizer)

// WithMaxFeatures caps the vocabulary size. Zero or negative disables
// the cap.
func WithMaxFeatures(n int) Option {
	return func(v *Vectorizer) {
		v.maxFeatures = n
	}
}

// WithMaxDocFreq sets the document-frequency ceiling as a fraction of
// the corpus; terms appearing in more documents are pruned.
func WithMaxDocFreq(fraction float64) Option {
	return func(v *Vectorizer) {
		if fraction > 0 && fraction <= 1 {
			v.maxDocFreq = fraction
		}
	}
}

// WithStopWords replaces the built-in English stop-word list.
func WithStopWords(words []string) Option {
	return func(v *Vectorizer) {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		v.stopWords = set
	}
}
