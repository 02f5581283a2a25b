// Package labels formats cricket display strings and renders row label
// templates.
package labels

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ellipsis is appended to truncated strings.
const Ellipsis = "..."

// BallsPerOver is the number of legal deliveries in an over.
const BallsPerOver = 6

// Truncate shortens s to its first n runes followed by Ellipsis. Strings of
// n runes or fewer are returned unchanged; n <= 0 yields "".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return strings.TrimRightFunc(s[:pos], unicode.IsSpace) + Ellipsis
		}
		i++
	}
	return s
}

// Ordinal returns n with its English suffix: 1st, 2nd, 3rd, 11th, 22nd.
func Ordinal(n int) string {
	suffix := "th"
	switch abs(n) % 100 {
	case 11, 12, 13:
	default:
		switch abs(n) % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Overs formats a legal-ball count as overs notation: 118 balls is "19.4".
func Overs(balls int) string {
	if balls < 0 {
		balls = 0
	}
	return fmt.Sprintf("%d.%d", balls/BallsPerOver, balls%BallsPerOver)
}

// Score formats an innings total. All out (10 wickets) drops the wicket count.
func Score(runs, wickets int) string {
	if wickets >= 10 {
		return strconv.Itoa(runs)
	}
	return fmt.Sprintf("%d/%d", runs, wickets)
}

// Initials abbreviates a team name to the first letter of each word, upper
// cased: "Mudgeeraba Nerang" is "MN".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
