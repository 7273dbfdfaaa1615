// Package markov implements a character level Markov model of order k. A model counts how often every k and
// k+1 character slice occurs in a training text and estimates the log probability of other texts from those
// counts, using add-one (Laplace) smoothing over the alphabet of the training text.
package markov

import (
	"fmt"
	"github.com/gostonefire/speakerid/slicer"
	"math"
	"unicode/utf8"
)

// Model - A trained Markov model. It is immutable once built.
type Model struct {
	order       int
	text        string
	counts      Counter
	uniqueChars int
}

// NewModel - Returns a pointer to a new Model trained on text
//   - order is the number of preceding characters to condition on, it must be at least 1
//   - text is the training text, a text shorter than order + 1 gives a model with few or no statistics
//   - backend selects the Counter implementation to count slices in
//
// It returns:
//   - model is a pointer to the trained Model
//   - err is of type InvalidOrder if order is less than 1, or a standard error if the counter could not be created
func NewModel(order int, text string, backend Backend) (model *Model, err error) {
	if order < 1 {
		err = InvalidOrder{}
		return
	}

	counter, err := backend.NewCounter()
	if err != nil {
		err = fmt.Errorf("error while creating counter for model: %w", err)
		return
	}

	model, err = NewModelWithCounter(order, text, counter)

	return
}

// NewModelWithCounter - Returns a pointer to a new Model trained on text, counting in the given Counter
//   - order is the number of preceding characters to condition on, it must be at least 1
//   - text is the training text
//   - counter is an empty Counter that the model takes ownership of
func NewModelWithCounter(order int, text string, counter Counter) (model *Model, err error) {
	if order < 1 {
		err = InvalidOrder{}
		return
	}

	model = &Model{
		order:       order,
		text:        text,
		counts:      counter,
		uniqueChars: uniqueChars(text),
	}
	model.train()

	return
}

// train - Counts the k and k+1 slices of the training text pairwise, stopping when either runs out
func (M *Model) train() {
	kSlices := slicer.New(M.text, M.order)
	k1Slices := slicer.New(M.text, M.order+1)

	for kSlices.HasNext() && k1Slices.HasNext() {
		kSlice, _ := kSlices.Next()
		k1Slice, _ := k1Slices.Next()
		M.counts.Set(kSlice, M.counts.Get(kSlice)+1)
		M.counts.Set(k1Slice, M.counts.Get(k1Slice)+1)
	}
}

// LogProbability - Returns the natural log probability of s under the model. The sum runs over every k+1
// slice of s and is not normalized by the length of s.
func (M *Model) LogProbability(s string) (logProb float64) {
	slices := slicer.New(s, M.order+1)
	alphabet := float64(M.alphabetSize())

	for slices.HasNext() {
		slice, _ := slices.Next()
		_, size := utf8.DecodeLastRuneInString(slice)
		prefix := slice[:len(slice)-size]

		m := M.counts.Get(slice)
		n := M.counts.Get(prefix)
		logProb += math.Log(float64(m+1) / (float64(n) + alphabet))
	}

	return
}

// Order - Returns the order of the model
func (M *Model) Order() int {
	return M.order
}

// alphabetSize - Returns the alphabet size used for smoothing, which is the number of distinct characters in
// the training text but never less than 1
func (M *Model) alphabetSize() int {
	return M.uniqueChars
}

// Count - Returns how many times slice occurs in the circular training text. Only slices of order or
// order + 1 characters are counted.
func (M *Model) Count(slice string) int {
	return M.counts.Get(slice)
}

// uniqueChars - Returns the number of distinct code points in text, at least 1
func uniqueChars(text string) int {
	seen := make(map[rune]struct{})
	for _, r := range text {
		seen[r] = struct{}{}
	}
	if len(seen) == 0 {
		return 1
	}
	return len(seen)
}
