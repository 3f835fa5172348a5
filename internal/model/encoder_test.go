package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelEncoder_RoundTrip(t *testing.T) {
	classes := []string{"Abdominals", "Back", "Chest", "Legs"}
	enc, err := NewLabelEncoder(classes)
	require.NoError(t, err)

	for i, label := range classes {
		code, err := enc.Encode(label)
		require.NoError(t, err)
		assert.Equal(t, i, code)

		back, err := enc.Decode(code)
		require.NoError(t, err)
		assert.Equal(t, label, back)
	}
}

func TestLabelEncoder_UnknownLabel(t *testing.T) {
	enc, err := NewLabelEncoder([]string{"Back", "Chest"})
	require.NoError(t, err)

	_, err = enc.Encode("Unicorn")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestLabelEncoder_CodeOutOfRange(t *testing.T) {
	enc, err := NewLabelEncoder([]string{"Back", "Chest"})
	require.NoError(t, err)

	_, err = enc.Decode(-1)
	require.ErrorIs(t, err, ErrUnknownCategory)
	_, err = enc.Decode(2)
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestLabelEncoder_Invalid(t *testing.T) {
	_, err := NewLabelEncoder(nil)
	require.Error(t, err)

	_, err = NewLabelEncoder([]string{"Back", "Back"})
	require.Error(t, err)
}

func TestLabelEncoder_ClassesIsCopy(t *testing.T) {
	enc, err := NewLabelEncoder([]string{"Back", "Chest"})
	require.NoError(t, err)

	classes := enc.Classes()
	classes[0] = "испорчено"

	back, err := enc.Decode(0)
	require.NoError(t, err)
	assert.Equal(t, "Back", back)
}

func TestEncoderSet_Get(t *testing.T) {
	enc, err := NewLabelEncoder([]string{"Back"})
	require.NoError(t, err)
	set := EncoderSet{FieldBodyPart: enc}

	got, err := set.Get(FieldBodyPart)
	require.NoError(t, err)
	assert.Same(t, enc, got)

	_, err = set.Get(FieldTitle)
	require.ErrorIs(t, err, ErrModelUnavailable)
}
