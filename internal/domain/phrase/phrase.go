package phrase

import "strings"

// Phrase is either a preset with pre-translated texts, or custom free text that
// is translated per target language.
type Phrase struct {
	ID          string            `json:"id" toml:"id"`
	Label       string            `json:"label" toml:"label"`
	Texts       map[string]string `json:"texts" toml:"texts"`
	Pace        float64           `json:"pace,omitempty" toml:"pace"`
	Temperature float64           `json:"temperature,omitempty" toml:"temperature"`

	// Custom is the user's text; set only for custom phrases.
	Custom string `json:"custom,omitempty" toml:"-"`
	// SourceLanguage is the language Custom is written in, if known.
	SourceLanguage string `json:"source_language,omitempty" toml:"-"`
}

// NewCustom builds a custom phrase. sourceLanguage may be empty when unknown.
func NewCustom(text, sourceLanguage string) Phrase {
	return Phrase{
		ID:             "custom",
		Label:          "Your own phrase",
		Custom:         strings.TrimSpace(text),
		SourceLanguage: sourceLanguage,
	}
}

// IsCustom reports whether the phrase is user supplied.
func (p Phrase) IsCustom() bool {
	return p.Custom != ""
}

// NeedsTranslation reports whether rendering the phrase in target requires a
// translation call. Presets never do.
func (p Phrase) NeedsTranslation(target string) bool {
	return p.IsCustom() && p.SourceLanguage != target
}

// TextFor returns the text to speak in target before any translation: the preset
// text for target, or the custom text. ok is false when a preset has no text for
// target.
func (p Phrase) TextFor(target string) (string, bool) {
	if p.IsCustom() {
		return p.Custom, true
	}
	text, ok := p.Texts[target]
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// SceneText is one language rendering of a scene.
type SceneText struct {
	LanguageCode    string `json:"language_code"`
	Text            string `json:"text"`
	Transliteration string `json:"transliteration,omitempty"`
	EnglishMeaning  string `json:"english_meaning,omitempty"`
}

// Scene is a short scripted piece with its own delivery style.
type Scene struct {
	ID          string      `json:"id"`
	Emoji       string      `json:"emoji"`
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Pace        float64     `json:"pace"`
	Temperature float64     `json:"temperature"`
	Texts       []SceneText `json:"texts"`
}

// Text returns the scene text for a language.
func (s Scene) Text(languageCode string) (SceneText, bool) {
	for _, t := range s.Texts {
		if t.LanguageCode == languageCode {
			return t, true
		}
	}
	return SceneText{}, false
}

// DefaultLanguage is the first language the scene is written in.
func (s Scene) DefaultLanguage() string {
	if len(s.Texts) == 0 {
		return ""
	}
	return s.Texts[0].LanguageCode
}

// Phrase returns the scene as a preset phrase carrying its pace and temperature.
func (s Scene) Phrase() Phrase {
	texts := make(map[string]string, len(s.Texts))
	for _, t := range s.Texts {
		texts[t.LanguageCode] = t.Text
	}
	return Phrase{
		ID:          s.ID,
		Label:       s.Title,
		Texts:       texts,
		Pace:        s.Pace,
		Temperature: s.Temperature,
	}
}
