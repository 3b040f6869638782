// Package index builds TF-IDF vector representations of document
// collections so that cosine similarity between a query and any
// document reduces to a sparse dot product.
//
// The weighting scheme is the classic sublinear TF-IDF:
//
//	weight(t, d) = (1 + ln(tf(t, d))) * idf(t)
//	idf(t)       = ln((1 + N) / (1 + df(t))) + 1
//
// with add-one smoothing on both counts and L2 normalization of every
// produced vector. The vocabulary is fixed at Fit time: Transform never
// grows it.
package index

import (
	"math"
	"sort"
)

// Default vectorizer configuration constants.
const (
	defaultMaxFeatures = 5000
	defaultMaxDocFreq  = 0.95
)

// Vectorizer holds the corpus-independent configuration used to fit an
// index. A single Vectorizer may fit many catalogs.
type Vectorizer struct {
	maxFeatures int
	maxDocFreq  float64
	stopWords   map[string]struct{}
}

// NewVectorizer creates a Vectorizer with configuration options.
func NewVectorizer(opts ...Option) *Vectorizer {
	v := &Vectorizer{
		maxFeatures: defaultMaxFeatures,
		maxDocFreq:  defaultMaxDocFreq,
		stopWords:   stopWords,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Fitted is an immutable index over one document collection. It owns the
// vocabulary, the per-term inverse document frequencies and the
// L2-normalized document vectors, in original document order.
type Fitted struct {
	vec        *Vectorizer
	vocabulary map[string]int
	idf        []float64
	docVectors []SparseVector
}

// Fit builds the vocabulary and document vectors for the given documents.
// Documents with no informative terms produce zero vectors. Returns
// ErrEmptyVocabulary when no term survives pruning (e.g. an empty corpus);
// callers are expected to fall back to fixture data rather than fail.
func (v *Vectorizer) Fit(documents []string) (*Fitted, error) {
	if len(documents) == 0 {
		return nil, ErrEmptyVocabulary
	}

	// Per-document term frequencies and corpus-wide counts.
	docTerms := make([]map[string]int, len(documents))
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)
	for i, doc := range documents {
		tf := make(map[string]int)
		for _, term := range v.terms(doc) {
			tf[term]++
		}
		docTerms[i] = tf
		for term, n := range tf {
			docFreq[term]++
			corpusFreq[term] += n
		}
	}

	// Prune terms appearing in more than maxDocFreq of all documents.
	maxDF := v.maxDocFreq * float64(len(documents))
	retained := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if float64(df) > maxDF {
			continue
		}
		retained = append(retained, term)
	}
	if len(retained) == 0 {
		return nil, ErrEmptyVocabulary
	}

	// Cap the vocabulary at maxFeatures, keeping the terms most frequent
	// across the corpus; alphabetical order breaks ties deterministically.
	sort.Strings(retained)
	if v.maxFeatures > 0 && len(retained) > v.maxFeatures {
		sort.SliceStable(retained, func(i, j int) bool {
			return corpusFreq[retained[i]] > corpusFreq[retained[j]]
		})
		retained = retained[:v.maxFeatures]
		sort.Strings(retained)
	}

	f := &Fitted{
		vec:        v,
		vocabulary: make(map[string]int, len(retained)),
		idf:        make([]float64, len(retained)),
	}
	for col, term := range retained {
		f.vocabulary[term] = col
		f.idf[col] = math.Log(float64(1+len(documents))/float64(1+docFreq[term])) + 1
	}

	f.docVectors = make([]SparseVector, len(documents))
	for i, tf := range docTerms {
		f.docVectors[i] = f.vectorize(tf)
	}

	return f, nil
}

// FitTransform fits the documents and returns both the index and the
// document vectors in input order.
func (v *Vectorizer) FitTransform(documents []string) (*Fitted, []SparseVector, error) {
	f, err := v.Fit(documents)
	if err != nil {
		return nil, nil, err
	}
	return f, f.docVectors, nil
}

// terms tokenizes text and expands the token stream into unigrams and
// bigrams, after stop-word removal.
func (v *Vectorizer) terms(text string) []string {
	tokens := tokenize(text)
	filtered := tokens[:0]
	for _, tok := range tokens {
		if _, stop := v.stopWords[tok]; stop {
			continue
		}
		filtered = append(filtered, tok)
	}

	terms := make([]string, 0, 2*len(filtered))
	terms = append(terms, filtered...)
	for i := 0; i+1 < len(filtered); i++ {
		terms = append(terms, filtered[i]+" "+filtered[i+1])
	}
	return terms
}

// Transform maps text onto the fitted vocabulary. Terms outside the
// vocabulary are ignored; a query sharing no terms with the corpus yields
// a zero vector. Returns ErrNotFitted when the index has no vocabulary.
func (f *Fitted) Transform(text string) (SparseVector, error) {
	if f == nil || len(f.vocabulary) == 0 {
		return nil, ErrNotFitted
	}

	tf := make(map[string]int)
	for _, term := range f.vec.terms(text) {
		if _, ok := f.vocabulary[term]; ok {
			tf[term]++
		}
	}
	return f.vectorize(tf), nil
}

// vectorize converts raw term counts to a normalized TF-IDF vector.
func (f *Fitted) vectorize(tf map[string]int) SparseVector {
	vec := make(SparseVector, len(tf))
	for term, n := range tf {
		col, ok := f.vocabulary[term]
		if !ok {
			continue
		}
		vec[col] = (1 + math.Log(float64(n))) * f.idf[col]
	}
	vec.normalize()
	return vec
}

// DocVector returns the precomputed vector for document i.
func (f *Fitted) DocVector(i int) SparseVector {
	return f.docVectors[i]
}

// Len returns the number of documents the index was fitted on.
func (f *Fitted) Len() int {
	if f == nil {
		return 0
	}
	return len(f.docVectors)
}

// VocabularySize returns the number of retained terms.
func (f *Fitted) VocabularySize() int {
	if f == nil {
		return 0
	}
	return len(f.vocabulary)
}

// SparseVector is a sparse column->weight representation of a document.
type SparseVector map[int]float64

// Dot returns the dot product of two sparse vectors. For L2-normalized
// vectors this equals their cosine similarity.
func (a SparseVector) Dot(b SparseVector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for col, w := range a {
		sum += w * b[col]
	}
	return sum
}

// Norm returns the Euclidean length of the vector.
func (a SparseVector) Norm() float64 {
	var sum float64
	for _, w := range a {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// normalize scales the vector to unit length in place.
func (a SparseVector) normalize() {
	norm := a.Norm()
	if norm == 0 {
		return
	}
	for col := range a {
		a[col] /= norm
	}
}
