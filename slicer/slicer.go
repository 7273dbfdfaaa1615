// Package slicer cuts a text into overlapping fixed width slices. The text is treated as circular, so the last
// width - 1 slices wrap around from the end of the text to its beginning and a text of n characters always
// yields n slices as long as width does not exceed n + 1.
package slicer

// Slices - Is used to iterate over the slices of a text one by one. Characters are Unicode code points.
type Slices struct {
	extended []rune
	width    int
	index    int
}

// New - Returns a pointer to a new Slices iterator positioned before the first slice
//   - text is the text to cut into slices
//   - width is the number of characters in each slice, a width less than 1 yields no slices
func New(text string, width int) *Slices {
	runes := []rune(text)
	if width < 1 {
		return &Slices{width: width}
	}

	wrap := width - 1
	if wrap > len(runes) {
		wrap = len(runes)
	}

	extended := make([]rune, 0, len(runes)+wrap)
	extended = append(extended, runes...)
	extended = append(extended, runes[:wrap]...)

	return &Slices{extended: extended, width: width}
}

// HasNext - Returns true if there are more slices to be fetched from a call to Next.
func (S *Slices) HasNext() bool {
	return S.width >= 1 && S.index+S.width <= len(S.extended)
}

// Next - Returns the next slice, ok is false when all slices have been returned
func (S *Slices) Next() (slice string, ok bool) {
	if !S.HasNext() {
		return
	}

	slice = string(S.extended[S.index : S.index+S.width])
	ok = true
	S.index++

	return
}

// Len - Returns the total number of slices, regardless of how many have been fetched
func (S *Slices) Len() int {
	if S.width < 1 || len(S.extended) < S.width {
		return 0
	}
	return len(S.extended) - S.width + 1
}

// All - Returns all slices of width characters from text
func All(text string, width int) (slices []string) {
	s := New(text, width)
	slices = make([]string, 0, s.Len())
	for s.HasNext() {
		slice, _ := s.Next()
		slices = append(slices, slice)
	}

	return
}
