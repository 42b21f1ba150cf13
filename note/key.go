package note

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordsheet/util"
)

var ErrUnknownKey = errors.New("unknown key")

type Preference string

const (
	PreferSharp Preference = "sharp"
	PreferFlat  Preference = "flat"
	PreferNone  Preference = "none"
)

type Key struct {
	Name       string
	Preference Preference
	Scale      [7]string
}

var majorSteps = [7]PitchClass{0, 2, 4, 5, 7, 9, 11}

var majorTonics = []struct {
	name string
	pref Preference
}{
	{"C", PreferNone},
	{"G", PreferSharp}, {"D", PreferSharp}, {"A", PreferSharp}, {"E", PreferSharp},
	{"B", PreferSharp}, {"F#", PreferSharp}, {"C#", PreferSharp},
	{"F", PreferFlat}, {"Bb", PreferFlat}, {"Eb", PreferFlat}, {"Ab", PreferFlat},
	{"Db", PreferFlat}, {"Gb", PreferFlat}, {"Cb", PreferFlat},
}

var standardMajor = [12]string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}
var standardMinor = [12]string{"Cm", "C#m", "Dm", "Ebm", "Em", "Fm", "F#m", "Gm", "G#m", "Am", "Bbm", "Bm"}

var keys = buildKeys()

func buildKeys() map[string]Key {
	res := make(map[string]Key, 2*len(majorTonics))
	for _, t := range majorTonics {
		scale := spellMajor(t.name)
		res[t.name] = Key{Name: t.name, Preference: t.pref, Scale: scale}

		var minor [7]string
		for i := range minor {
			minor[i] = scale[(i+5)%7]
		}
		name := minor[0] + "m"
		res[name] = Key{Name: name, Preference: t.pref, Scale: minor}
	}
	return res
}

// spellMajor walks the seven letters from the tonic, giving each the
// accidental that lands it on the right degree.
func spellMajor(tonic string) [7]string {
	var scale [7]string
	root, _ := PitchClassOf(tonic)
	start := letterIndex(tonic[0])
	for i := range scale {
		letter := "CDEFGAB"[(start+i)%7]
		want := util.Mod(root+majorSteps[i], 12)
		diff := util.Mod(want-letterClass[letter]+6, 12) - 6
		acc := ""
		if diff > 0 {
			acc = strings.Repeat("#", int(diff))
		} else if diff < 0 {
			acc = strings.Repeat("b", int(-diff))
		}
		scale[i] = string(letter) + acc
	}
	return scale
}

func LookupKey(name string) (Key, error) {
	k, ok := keys[strings.TrimSpace(name)]
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

func ScaleOf(name string) ([7]string, error) {
	k, err := LookupKey(name)
	return k.Scale, err
}

func AccidentalPreference(name string) (Preference, error) {
	k, err := LookupKey(name)
	if err != nil {
		return PreferNone, err
	}
	return k.Preference, nil
}

// InScale reports whether the exact spelling appears in the key's scale.
func (k Key) InScale(name string) bool {
	for _, n := range k.Scale {
		if n == name {
			return true
		}
	}
	return false
}

// Degree returns the zero-based scale degree of pc in k, or -1.
func (k Key) Degree(pc PitchClass) int {
	for i, n := range k.Scale {
		if c, _ := PitchClassOf(n); c == pc {
			return i
		}
	}
	return -1
}

// SplitKey separates a key name into its tonic and minor flag ("F#m" -> "F#", true).
func SplitKey(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if len(name) > 1 && strings.HasSuffix(name, "m") {
		return strings.TrimSuffix(name, "m"), true
	}
	return name, false
}

// StandardKeyName is the conventional name for a key on pc.
func StandardKeyName(pc PitchClass, minor bool) string {
	if minor {
		return standardMinor[util.Mod(pc, 12)]
	}
	return standardMajor[util.Mod(pc, 12)]
}

// StandardMajorKeys lists the twelve conventional major keys around the
// circle of fifths, starting at C.
func StandardMajorKeys() []string {
	return []string{"C", "G", "D", "A", "E", "B", "F#", "Db", "Ab", "Eb", "Bb", "F"}
}

// KeyNames lists every key in the table, sorted.
func KeyNames() []string {
	return util.SortedKeys(keys)
}
