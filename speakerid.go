// Package speakerid decides which of two reference speakers most likely produced a piece of unattributed text,
// by scoring the text under a character level Markov model trained on each speaker's sample.
package speakerid

import (
	"fmt"
	"github.com/gostonefire/speakerid/markov"
	"unicode/utf8"
)

// Verdict - Which speaker the unattributed text is attributed to
type Verdict string

const (
	// VerdictA - Speaker A is the more likely source
	VerdictA Verdict = "A"
	// VerdictB - Speaker B is the more likely source
	VerdictB Verdict = "B"
	// VerdictTie - Both speakers are equally likely
	VerdictTie Verdict = "TIE"
)

// Result - The outcome of IdentifySpeaker
//   - ScoreA is the log probability of the text under speaker A's model divided by the length of the text
//   - ScoreB is the same for speaker B
//   - Verdict is the speaker with the higher score, or VerdictTie if the scores are equal
type Result struct {
	ScoreA  float64
	ScoreB  float64
	Verdict Verdict
}

// String - Returns the result in human readable form
func (R Result) String() string {
	return fmt.Sprintf("Speaker A: %v\nSpeaker B: %v\n\nConclusion: Speaker %s is most likely", R.ScoreA, R.ScoreB, R.Verdict)
}

// IdentifySpeaker - Trains one Markov model per speaker and scores the unattributed text under both.
//   - textA is the sample text of speaker A
//   - textB is the sample text of speaker B
//   - unknown is the unattributed text, it must not be empty
//   - order is the Markov order k, at least 1
//   - backend selects the counter implementation, the choice does not affect the result
//
// It returns:
//   - result holds the length normalized scores and the verdict
//   - err is of type EmptyText if unknown is empty, or an error from building the models
func IdentifySpeaker(textA, textB, unknown string, order int, backend markov.Backend) (result Result, err error) {
	length := utf8.RuneCountInString(unknown)
	if length == 0 {
		err = EmptyText{}
		return
	}

	modelA, err := markov.NewModel(order, textA, backend)
	if err != nil {
		err = fmt.Errorf("error while building model for speaker A: %w", err)
		return
	}

	modelB, err := markov.NewModel(order, textB, backend)
	if err != nil {
		err = fmt.Errorf("error while building model for speaker B: %w", err)
		return
	}

	result.ScoreA = modelA.LogProbability(unknown) / float64(length)
	result.ScoreB = modelB.LogProbability(unknown) / float64(length)
	result.Verdict = verdict(result.ScoreA, result.ScoreB)

	return
}

// verdict - Compares two scores
func verdict(scoreA, scoreB float64) Verdict {
	switch {
	case scoreA > scoreB:
		return VerdictA
	case scoreB > scoreA:
		return VerdictB
	default:
		return VerdictTie
	}
}
