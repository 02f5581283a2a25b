package motion

import (
	"math"
	"strings"
	"unicode/utf8"
)

// SplitMode selects how text is broken into staggered tokens.
type SplitMode string

const (
	ByChar SplitMode = "chars"
	ByWord SplitMode = "words"
)

// Token is one staggered unit with its own window.
type Token struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Window Window `json:"window"`
}

// SplitTokens breaks text into characters or whitespace-separated words.
func SplitTokens(text string, mode SplitMode) []string {
	if mode == ByWord {
		return strings.Fields(text)
	}
	tokens := make([]string, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		tokens = append(tokens, string(r))
	}
	return tokens
}

// StaggerWindows returns n windows, the i-th starting i*delay frames after
// base. Duration and easing are shared.
func StaggerWindows(n int, base Window, delay int) []Window {
	if n <= 0 {
		return nil
	}
	windows := make([]Window, n)
	for i := range windows {
		windows[i] = base.Shift(i * delay)
	}
	return windows
}

// Stagger assigns each token its shifted window.
func Stagger(tokens []string, base Window, delay int) []Token {
	windows := StaggerWindows(len(tokens), base, delay)
	out := make([]Token, len(tokens))
	for i, text := range tokens {
		out[i] = Token{Index: i, Text: text, Window: windows[i]}
	}
	return out
}

// VisibleText returns the prefix of text revealed at progress p, for
// typewriter effects. Counting is by rune. NaN reveals nothing.
func VisibleText(text string, p float64) string {
	if p <= 0 || math.IsNaN(p) {
		return ""
	}
	total := utf8.RuneCountInString(text)
	if p >= 1 {
		return text
	}
	n := int(p * float64(total))
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}
	return text
}
