package phrase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicerelay/internal/domain/language"
)

func TestPhrase_PresetNeverNeedsTranslation(t *testing.T) {
	t.Parallel()

	p := Phrase{ID: "x", Texts: map[string]string{"hi-IN": "नमस्ते"}}

	assert.False(t, p.IsCustom())
	assert.False(t, p.NeedsTranslation("hi-IN"))
	assert.False(t, p.NeedsTranslation("bn-IN"))

	text, ok := p.TextFor("hi-IN")
	require.True(t, ok)
	assert.Equal(t, "नमस्ते", text)

	_, ok = p.TextFor("bn-IN")
	assert.False(t, ok)
}

func TestPhrase_CustomTranslatesExceptSourceLanguage(t *testing.T) {
	t.Parallel()

	p := NewCustom("  Good morning  ", "en-IN")

	assert.True(t, p.IsCustom())
	assert.True(t, p.NeedsTranslation("hi-IN"))
	assert.False(t, p.NeedsTranslation("en-IN"))

	text, ok := p.TextFor("ta-IN")
	require.True(t, ok)
	assert.Equal(t, "Good morning", text)

	unknownSource := NewCustom("Good morning", "")
	assert.True(t, unknownSource.NeedsTranslation("en-IN"))
}

func TestRelayPhrases_CoverEveryLanguage(t *testing.T) {
	t.Parallel()

	for _, p := range RelayPhrases() {
		for _, l := range language.All() {
			_, ok := p.TextFor(l.Code)
			assert.True(t, ok, "phrase %s has no %s text", p.ID, l.Code)
		}
	}
}

func TestScene_Phrase(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	scene, ok := catalog.Scene("cricket")
	require.True(t, ok)

	assert.Equal(t, "hi-IN", scene.DefaultLanguage())

	p := scene.Phrase()
	assert.Equal(t, scene.Pace, p.Pace)
	assert.Equal(t, scene.Temperature, p.Temperature)
	assert.Len(t, p.Texts, len(scene.Texts))

	text, ok := scene.Text("bn-IN")
	require.True(t, ok)
	assert.NotEmpty(t, text.Transliteration)

	_, ok = scene.Text("pa-IN")
	assert.False(t, ok)
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "phrases.toml")
	content := `
[[phrase]]
id = "chai"
label = "Chai time"
pace = 1.1

[phrase.texts]
"hi-IN" = "चाय पियोगे?"
"en-IN" = "Fancy some chai?"

[[phrase]]
id = "thanks"
label = "Thanks!"

[phrase.texts]
"en-IN" = "Thanks!"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	chai, ok := catalog.Phrase("chai")
	require.True(t, ok)
	assert.Equal(t, "Chai time", chai.Label)
	assert.InDelta(t, 1.1, chai.Pace, 0.0001)
	assert.Equal(t, "चाय पियोगे?", chai.Texts["hi-IN"])

	thanks, ok := catalog.Phrase("thanks")
	require.True(t, ok)
	assert.Equal(t, "Thanks!", thanks.Label, "file entries replace built-ins")
	assert.Len(t, catalog.Phrases, len(RelayPhrases())+1)
}

func TestLoadCatalog_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "noid.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[phrase]]\nlabel = \"x\"\n"), 0o600))
	_, err = LoadCatalog(path)
	assert.Error(t, err)

	catalog, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, catalog.Phrases, len(RelayPhrases()))
}
