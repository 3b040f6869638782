package index_test

import (
	"errors"
	"testing"

	index "github.com/okian/davos/internal/domain/index"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVectorizer_Fit(t *testing.T) {
	Convey("Given a default vectorizer", t, func() {
		v := index.NewVectorizer()

		Convey("When fitting a small document collection", func() {
			docs := []string{
				"machine learning models for prediction",
				"deep learning neural networks",
				"traditional cooking recipes",
			}
			fitted, err := v.Fit(docs)

			Convey("Then it should index every document", func() {
				So(err, ShouldBeNil)
				So(fitted.Len(), ShouldEqual, 3)
				So(fitted.VocabularySize(), ShouldBeGreaterThan, 0)
			})

			Convey("And every document vector should have unit length", func() {
				So(err, ShouldBeNil)
				for i := 0; i < fitted.Len(); i++ {
					So(fitted.DocVector(i).Norm(), ShouldAlmostEqual, 1.0, 1e-9)
				}
			})

			Convey("And a document should be most similar to itself", func() {
				So(err, ShouldBeNil)
				vec, terr := fitted.Transform(docs[0])
				So(terr, ShouldBeNil)
				So(vec.Dot(fitted.DocVector(0)), ShouldAlmostEqual, 1.0, 1e-9)
				So(vec.Dot(fitted.DocVector(2)), ShouldBeLessThan, vec.Dot(fitted.DocVector(0)))
			})
		})

		Convey("When fitting an empty collection", func() {
			_, err := v.Fit(nil)

			Convey("Then it should report an empty vocabulary", func() {
				So(errors.Is(err, index.ErrEmptyVocabulary), ShouldBeTrue)
			})
		})

		Convey("When every token is a stop word", func() {
			_, err := v.Fit([]string{"the and of", "with from into"})

			Convey("Then it should report an empty vocabulary", func() {
				So(errors.Is(err, index.ErrEmptyVocabulary), ShouldBeTrue)
			})
		})
	})
}

func TestVectorizer_Bigrams(t *testing.T) {
	Convey("Given a fitted index over bigram-bearing documents", t, func() {
		v := index.NewVectorizer()
		fitted, err := v.Fit([]string{
			"climate change policy frameworks",
			"climate economics research",
		})
		So(err, ShouldBeNil)

		Convey("When transforming a query that matches a bigram", func() {
			vec, terr := fitted.Transform("climate change")
			So(terr, ShouldBeNil)

			Convey("Then the bigram document should outscore the unigram-only one", func() {
				So(vec.Dot(fitted.DocVector(0)), ShouldBeGreaterThan, vec.Dot(fitted.DocVector(1)))
			})
		})
	})
}

func TestVectorizer_MaxDocFreq(t *testing.T) {
	Convey("Given a vectorizer with an aggressive document-frequency cutoff", t, func() {
		v := index.NewVectorizer(index.WithMaxDocFreq(0.5))

		Convey("When a term appears in every document", func() {
			fitted, err := v.Fit([]string{"apple banana", "apple cherry"})
			So(err, ShouldBeNil)

			Convey("Then the ubiquitous term is pruned from the vocabulary", func() {
				// banana, cherry and the two bigrams survive; apple does not.
				So(fitted.VocabularySize(), ShouldEqual, 4)
				vec, terr := fitted.Transform("apple")
				So(terr, ShouldBeNil)
				So(len(vec), ShouldEqual, 0)
			})
		})
	})
}

func TestVectorizer_MaxFeatures(t *testing.T) {
	Convey("Given a vectorizer with a small feature cap", t, func() {
		v := index.NewVectorizer(
			index.WithMaxFeatures(2),
			index.WithMaxDocFreq(1.0),
		)

		Convey("When the corpus has more terms than the cap", func() {
			fitted, err := v.Fit([]string{"go go go rust", "go python"})
			So(err, ShouldBeNil)

			Convey("Then only the most frequent terms are retained", func() {
				So(fitted.VocabularySize(), ShouldEqual, 2)

				kept, terr := fitted.Transform("go")
				So(terr, ShouldBeNil)
				So(len(kept), ShouldBeGreaterThan, 0)

				dropped, terr := fitted.Transform("rust")
				So(terr, ShouldBeNil)
				So(len(dropped), ShouldEqual, 0)
			})
		})
	})
}

func TestFitted_Transform(t *testing.T) {
	Convey("Given a fitted index", t, func() {
		v := index.NewVectorizer()
		fitted, err := v.Fit([]string{"solar energy transition", "digital banking services"})
		So(err, ShouldBeNil)

		Convey("When transforming a query with no corpus overlap", func() {
			vec, terr := fitted.Transform("underwater basket weaving")
			So(terr, ShouldBeNil)

			Convey("Then it should yield a valid zero vector", func() {
				So(len(vec), ShouldEqual, 0)
				So(vec.Dot(fitted.DocVector(0)), ShouldEqual, 0)
			})
		})

		Convey("When transforming against a nil index", func() {
			var missing *index.Fitted
			_, terr := missing.Transform("anything")

			Convey("Then it should report not fitted", func() {
				So(errors.Is(terr, index.ErrNotFitted), ShouldBeTrue)
			})
		})
	})
}

func TestSparseVector_Dot(t *testing.T) {
	Convey("Given two sparse vectors", t, func() {
		a := index.SparseVector{0: 0.6, 1: 0.8}
		b := index.SparseVector{1: 1.0}

		Convey("When computing the dot product", func() {
			Convey("Then it should sum over shared columns only", func() {
				So(a.Dot(b), ShouldAlmostEqual, 0.8, 1e-12)
				So(b.Dot(a), ShouldAlmostEqual, 0.8, 1e-12)
			})
		})

		Convey("When computing the norm", func() {
			Convey("Then it should be the Euclidean length", func() {
				So(a.Norm(), ShouldAlmostEqual, 1.0, 1e-12)
				So(index.SparseVector{}.Norm(), ShouldEqual, 0)
			})
		})
	})
}
