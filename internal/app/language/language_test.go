package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "s3-audio-translate/internal/app/errors"
)

func TestDefaultTable(t *testing.T) {
	table := NewTable(nil)

	assert.Equal(t, []string{NoTranslation, "Hindi", "Marathi", "Japanese", "Spanish", "French", "German"}, table.Labels())

	target, err := table.Resolve(NoTranslation)
	require.NoError(t, err)
	assert.Empty(t, target)

	target, err = table.Resolve("")
	require.NoError(t, err)
	assert.Empty(t, target)

	target, err = table.Resolve("Hindi")
	require.NoError(t, err)
	assert.Equal(t, "Hindi", target)

	_, err = table.Resolve("Klingon")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedLanguage)
}

func TestNewTable_Custom(t *testing.T) {
	table := NewTable([]Option{
		{Label: "Italian"},
		{Label: "Portuguese (Brazil)", Target: "Brazilian Portuguese"},
		{Label: "Italian", Target: "ignored duplicate"},
		{Label: NoTranslation, Target: "should not translate"},
	})

	assert.Equal(t, []string{NoTranslation, "Italian", "Portuguese (Brazil)"}, table.Labels())

	target, err := table.Resolve("Italian")
	require.NoError(t, err)
	assert.Equal(t, "Italian", target)

	target, err = table.Resolve("Portuguese (Brazil)")
	require.NoError(t, err)
	assert.Equal(t, "Brazilian Portuguese", target)

	target, err = table.Resolve(NoTranslation)
	require.NoError(t, err)
	assert.Empty(t, target)
}

func TestOptions_ReturnsCopy(t *testing.T) {
	table := NewTable(nil)
	opts := table.Options()
	opts[1].Label = "changed"
	assert.Equal(t, "Hindi", table.Options()[1].Label)
}
