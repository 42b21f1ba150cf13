// Package words tells chord tokens apart from lyric words that happen to
// share their shape. The heuristic is tunable per language through Policy.
package words

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var chordShape = regexp.MustCompile(`^[A-G][#b]?[A-Za-z0-9#+°øºΔ()/-]*$`)
var repeatMark = regexp.MustCompile(`^[xX]\d+$`)

var fillers = map[string]bool{
	"|": true, "||": true, "-": true, "%": true, "/": true,
	"N.C.": true, "NC": true, "n.c.": true,
}

// Policy is the set of thresholds and stop words a token has to get past.
// A Policy is never modified after construction.
type Policy struct {
	maxLength    int
	maxLowercase int
	stopWords    map[string]struct{}
}

// common short Spanish words, solfège names and section labels that can look
// like chords, plus a handful of English ones
var spanishStopWords = []string{
	"la", "mi", "se", "el", "de", "en", "es", "do", "re", "si", "sol", "fa",
	"al", "ay", "da", "dan", "dar", "fe", "fue", "ama", "amo", "amen", "amor",
	"ante", "aun", "bajo", "cada", "cae", "como", "con", "dame", "dale", "del",
	"dios", "ella", "esa", "ese", "eso", "esta", "este", "gran", "eres", "era",
	"amén", "dónde", "cómo", "está", "estás", "cruz", "dime", "dije", "abba",
	"ave", "ame", "fui", "bien", "cabe", "debe", "bebe",
	"coro", "coda", "fin", "bis", "final", "verso", "puente", "intro", "outro",
	"be", "bad", "bed", "cab", "dad", "fed", "bag", "ace", "age", "bee",
}

var defaultPolicy = NewPolicy(12, 4, spanishStopWords...)

func NewPolicy(maxLength, maxLowercase int, stopWords ...string) Policy {
	m := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		m[strings.ToLower(w)] = struct{}{}
	}
	return Policy{maxLength: maxLength, maxLowercase: maxLowercase, stopWords: m}
}

func Default() Policy {
	return defaultPolicy
}

// With returns a copy of p with extra stop words.
func (p Policy) With(stopWords ...string) Policy {
	all := make([]string, 0, len(p.stopWords)+len(stopWords))
	for w := range p.stopWords {
		all = append(all, w)
	}
	return NewPolicy(p.maxLength, p.maxLowercase, append(all, stopWords...)...)
}

// IsLikelyChordToken rejects tokens that are too long, too wordy, or on the
// stop list. It does not check the chord shape.
func (p Policy) IsLikelyChordToken(s string) bool {
	if s == "" || utf8.RuneCountInString(s) > p.maxLength {
		return false
	}
	if countLowercase(s) > p.maxLowercase {
		return false
	}
	_, stop := p.stopWords[strings.ToLower(s)]
	return !stop
}

// IsChord is the full test: chord shaped and likely a chord.
func (p Policy) IsChord(s string) bool {
	return IsChordShaped(s) && p.IsLikelyChordToken(s)
}

// IsChordRow reports whether every token on line is a chord or a bar/repeat
// marker, with at least one chord.
func (p Policy) IsChordRow(line string) bool {
	var chords int
	for _, field := range strings.Fields(line) {
		if isFiller(field) {
			continue
		}
		token := strings.Trim(field, "()|")
		if isFiller(token) || token == "" {
			continue
		}
		if !p.IsChord(token) {
			return false
		}
		chords++
	}
	return chords > 0
}

func IsChordShaped(s string) bool {
	return chordShape.MatchString(s)
}

func IsLikelyChordToken(s string) bool {
	return defaultPolicy.IsLikelyChordToken(s)
}

func IsChord(s string) bool {
	return defaultPolicy.IsChord(s)
}

func IsChordRow(line string) bool {
	return defaultPolicy.IsChordRow(line)
}

func isFiller(s string) bool {
	return fillers[s] || repeatMark.MatchString(strings.Trim(s, "()"))
}

// countLowercase skips a 'b' written right after a note letter, since that
// is a flat sign and not part of a word.
func countLowercase(s string) int {
	var n int
	var prev rune
	for _, r := range s {
		if r == 'b' && prev >= 'A' && prev <= 'G' {
			prev = r
			continue
		}
		if unicode.IsLower(r) {
			n++
		}
		prev = r
	}
	return n
}
