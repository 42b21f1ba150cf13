package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/constants"
)

const (
	resolution = smf.MetricTicks(960)
	rootBase   = 48 // C3
	bassBase   = 36 // C2
	velocity   = 90
)

// Event is one chord read back out of a practice track.
type Event struct {
	Chord string
	Root  uint8
	Bass  uint8
}

// Write renders chords as a single-track SMF, one bar per chord: the root over
// the bass (the root again when there is no slash bass), with the chord symbol
// as a lyric event. Tokens that don't parse become a bar of rest.
func Write(w io.Writer, title string, chords []string, bpm float64) error {
	s := smf.New()
	s.TimeFormat = resolution
	bar := resolution.Ticks4th() * constants.BeatsPerChord

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(title))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(bpm))

	var delta uint32
	for _, token := range chords {
		c, err := chord.Parse(token)
		if err != nil {
			delta += bar
			continue
		}
		root, bass := chord.Notes(c)
		if bass < 0 {
			bass = root
		}
		keys := []uint8{rootBase + uint8(root), bassBase + uint8(bass)}

		tr.Add(delta, smf.MetaLyric(token))
		for _, key := range keys {
			tr.Add(0, midi.NoteOn(0, key, velocity))
		}
		tr.Add(bar, midi.NoteOff(0, keys[0]))
		tr.Add(0, midi.NoteOff(0, keys[1]))
		delta = 0
	}
	tr.Close(delta)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("could not add track: %w", err)
	}
	_, err := s.WriteTo(w)
	return err
}

func Read(r io.Reader) ([]Event, error) {
	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file... %w", err)
	}

	var events []Event
	for _, track := range s.Tracks {
		for _, ev := range track {
			var text string
			var channel, key, vel uint8
			switch {
			case ev.Message.GetMetaLyric(&text):
				events = append(events, Event{Chord: text})
			case ev.Message.GetNoteOn(&channel, &key, &vel):
				if len(events) == 0 {
					continue
				}
				last := &events[len(events)-1]
				if key >= rootBase {
					last.Root = key
				} else {
					last.Bass = key
				}
			}
		}
	}
	return events, nil
}

func ReadMidiFile(filepath string) (events []Event, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file... %w", err)
	}
	return Read(bytes.NewReader(dat))
}
