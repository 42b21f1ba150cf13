package words

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsChordAcceptsRealChords(t *testing.T) {
	for _, s := range []string{"A", "C#m7", "Bbmaj7", "Ebmaj9/Bb", "G2/B", "Cmaj13#11", "Dsus4", "F#m7b5", "C6/9", "Abadd9"} {
		t.Run(fmt.Sprintf("accepts %v", s), func(t *testing.T) {
			assert.True(t, IsChord(s))
		})
	}
}

func TestIsChordRejectsWords(t *testing.T) {
	for _, s := range []string{"la", "Mi", "El", "De", "Dios", "Gracias", "Amor", "Coro", "Cantaré", "Dame,", "Bad", "Abracadabra", "Amén", "Eres", "Dónde", "Cómo", "Cruz", "Está"} {
		t.Run(fmt.Sprintf("rejects %v", s), func(t *testing.T) {
			assert.False(t, IsChord(s))
		})
	}
}

func TestLengthThreshold(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsLikelyChordToken("C7#9b13#11A"))
	assert.False(IsLikelyChordToken("C7#9b13#11#5b9"))
}

func TestCustomPolicyStopWords(t *testing.T) {
	p := NewPolicy(12, 4, "Dm")
	assert.False(t, p.IsChord("Dm"))
	assert.True(t, Default().IsChord("Dm"))

	extended := Default().With("Am")
	assert.False(t, extended.IsChord("Am"))
	assert.False(t, extended.IsChord("la"))
	assert.True(t, Default().IsChord("Am"))
}

func TestIsChordRow(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsChordRow("G      C   D/F#"))
	assert.True(IsChordRow("| Am | F | (x2)"))
	assert.True(IsChordRow("(Em7)  N.C."))
	assert.False(IsChordRow("Mil generaciones"))
	assert.False(IsChordRow("A la casa voy"))
	assert.False(IsChordRow("| - |"))
	assert.False(IsChordRow("   "))
}

func TestAccentedQualitiesAreNotChords(t *testing.T) {
	assert := assert.New(t)
	assert.False(IsChordShaped("Amén"))
	assert.False(IsChordShaped("Canté"))
	assert.True(IsChordShaped("C(add9)"))
	assert.True(IsChordShaped("Bø7"))
	assert.True(IsChordShaped("CΔ7"))
	assert.False(IsChordRow("Amén"))
	assert.False(IsChordRow("Eres"))
}
