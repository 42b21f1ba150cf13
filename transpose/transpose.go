// Package transpose shifts chords by semitones and spells the results for
// the key they land in.
package transpose

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/logger"
	"github.com/jsphweid/chordsheet/note"
	"github.com/jsphweid/chordsheet/util"
	"github.com/jsphweid/chordsheet/words"
)

// Spelling picks how accidentals are written after a shift.
type Spelling int

const (
	// KeyAware uses the target key's scale, then its accidental preference.
	KeyAware Spelling = iota
	SharpsOnly
	FlatsOnly
)

func ParseSpelling(s string) (Spelling, error) {
	switch strings.ToLower(s) {
	case "", "key", "key-aware":
		return KeyAware, nil
	case "sharp", "sharps":
		return SharpsOnly, nil
	case "flat", "flats":
		return FlatsOnly, nil
	}
	return KeyAware, fmt.Errorf("unknown spelling %q", s)
}

type Transposer struct {
	spelling Spelling
	policy   words.Policy
}

type Option func(*Transposer)

func WithSpelling(s Spelling) Option {
	return func(t *Transposer) {
		t.spelling = s
	}
}

func WithPolicy(p words.Policy) Option {
	return func(t *Transposer) {
		t.policy = p
	}
}

func New(opts ...Option) *Transposer {
	t := &Transposer{spelling: KeyAware, policy: words.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTransposer = New()

var bracketChord = regexp.MustCompile(`\[([^\]]+)\]`)
var run = regexp.MustCompile(`\S+`)

// Note shifts one note name. A whole number of octaves, or a name that isn't
// a note, comes back untouched. When targetKey is empty it is derived from
// originalKey.
func (t *Transposer) Note(name string, semitones int, originalKey, targetKey string) string {
	if util.Mod(semitones, 12) == 0 {
		return name
	}
	pc, err := note.PitchClassOf(name)
	if err != nil {
		logger.Debug("leaving note as is", logger.String("note", name), logger.ErrorField(err))
		return name
	}
	if targetKey == "" && originalKey != "" {
		targetKey = TargetKey(originalKey, semitones)
	}
	newClass := util.Mod(pc+note.PitchClass(util.Mod(semitones, 12)), 12)
	return note.Simplify(t.spell(newClass, semitones, targetKey))
}

func (t *Transposer) spell(pc note.PitchClass, semitones int, targetKey string) string {
	if n, ok := note.Natural(pc); ok {
		return n
	}
	sharp, flat := note.Sharp(pc), note.Flat(pc)
	switch t.spelling {
	case SharpsOnly:
		return sharp
	case FlatsOnly:
		return flat
	}

	key, err := note.LookupKey(targetKey)
	if err != nil {
		if targetKey != "" {
			logger.Debug("spelling without key", logger.ErrorField(err))
		}
		return byDirection(sharp, flat, semitones)
	}
	inSharp, inFlat := key.InScale(sharp), key.InScale(flat)
	var name string
	switch {
	case inSharp && !inFlat:
		name = sharp
	case inFlat && !inSharp:
		name = flat
	case key.Preference == note.PreferSharp:
		name = sharp
	case key.Preference == note.PreferFlat:
		name = flat
	default:
		name = byDirection(sharp, flat, semitones)
	}
	if note.IsTheoretical(name) && !key.InScale(name) {
		return note.NaturalOf(name)
	}
	return name
}

func byDirection(sharp, flat string, semitones int) string {
	if semitones > 0 {
		return sharp
	}
	return flat
}

// Chord shifts root and bass of a chord token. The quality is never touched
// and a token that doesn't parse is returned verbatim.
func (t *Transposer) Chord(token string, semitones int, originalKey, targetKey string) string {
	if util.Mod(semitones, 12) == 0 {
		return token
	}
	c, err := chord.Parse(token)
	if err != nil {
		logger.Debug("leaving chord as is", logger.String("chord", token), logger.ErrorField(err))
		return token
	}
	if targetKey == "" && originalKey != "" {
		targetKey = TargetKey(originalKey, semitones)
	}
	c.Root = t.Note(c.Root, semitones, originalKey, targetKey)
	if c.Bass != "" {
		c.Bass = t.Note(c.Bass, semitones, originalKey, targetKey)
	}
	return chord.String(c)
}

// Line shifts every chord on a line. With no originalKey the key is guessed
// from the line's own chords.
func (t *Transposer) Line(line string, semitones int, originalKey string) string {
	if util.Mod(semitones, 12) == 0 {
		return line
	}
	if originalKey == "" {
		originalKey = t.DetectKey(t.Chords(line))
	}
	return t.LineInKey(line, semitones, originalKey, TargetKey(originalKey, semitones))
}

// LineInKey is Line with both keys already settled. Whitespace is kept byte
// for byte; only accepted chord tokens are rewritten.
func (t *Transposer) LineInKey(line string, semitones int, originalKey, targetKey string) string {
	if util.Mod(semitones, 12) == 0 {
		return line
	}
	if t.hasBracketChords(line) {
		return bracketChord.ReplaceAllStringFunc(line, func(m string) string {
			inner := m[1 : len(m)-1]
			if !t.policy.IsChord(inner) {
				return m
			}
			return "[" + t.Chord(inner, semitones, originalKey, targetKey) + "]"
		})
	}
	return run.ReplaceAllStringFunc(line, func(field string) string {
		return t.Token(field, semitones, originalKey, targetKey)
	})
}

// Token shifts one whitespace-free field of a chord row, keeping any bar
// lines or parentheses around the chord: "(Em7)" up 2 in D is "(F#m7)".
// Fields the filter rejects come back verbatim.
func (t *Transposer) Token(field string, semitones int, originalKey, targetKey string) string {
	prefix, core, suffix := splitField(field)
	if !t.policy.IsChord(core) {
		return field
	}
	return prefix + t.Chord(core, semitones, originalKey, targetKey) + suffix
}

// Chords lists the chord tokens the filter accepts on a line, in order.
func (t *Transposer) Chords(line string) []string {
	var res []string
	if t.hasBracketChords(line) {
		for _, m := range bracketChord.FindAllStringSubmatch(line, -1) {
			if t.policy.IsChord(m[1]) {
				res = append(res, m[1])
			}
		}
		return res
	}
	for _, field := range run.FindAllString(line, -1) {
		if _, core, _ := splitField(field); t.policy.IsChord(core) {
			res = append(res, core)
		}
	}
	return res
}

func (t *Transposer) hasBracketChords(line string) bool {
	if !strings.Contains(line, "[") || !strings.Contains(line, "]") {
		return false
	}
	for _, m := range bracketChord.FindAllStringSubmatch(line, -1) {
		if t.policy.IsChord(m[1]) {
			return true
		}
	}
	return false
}

// splitField peels bar lines and parentheses off a token: "(Em7)" -> "(", "Em7", ")".
func splitField(field string) (string, string, string) {
	core := strings.TrimLeft(field, "(|")
	prefix := field[:len(field)-len(core)]
	trimmed := strings.TrimRight(core, ")|")
	suffix := core[len(trimmed):]
	return prefix, trimmed, suffix
}

func Note(name string, semitones int, originalKey, targetKey string) string {
	return defaultTransposer.Note(name, semitones, originalKey, targetKey)
}

func Chord(token string, semitones int, originalKey, targetKey string) string {
	return defaultTransposer.Chord(token, semitones, originalKey, targetKey)
}

func Line(line string, semitones int, originalKey string) string {
	return defaultTransposer.Line(line, semitones, originalKey)
}

func Chords(line string) []string {
	return defaultTransposer.Chords(line)
}
