package language

import "fmt"

// Language describes one supported spoken language.
type Language struct {
	Code         string `json:"code" toml:"code"`
	Name         string `json:"name" toml:"name"`
	NativeScript string `json:"native_script" toml:"native_script"`
}

// Voice is a speaker the synthesis engine can use.
type Voice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Relay order matters: the cascade plays in exactly this sequence.
var languages = []Language{
	{Code: "hi-IN", Name: "Hindi", NativeScript: "हिन्दी"},
	{Code: "bn-IN", Name: "Bengali", NativeScript: "বাংলা"},
	{Code: "ta-IN", Name: "Tamil", NativeScript: "தமிழ்"},
	{Code: "te-IN", Name: "Telugu", NativeScript: "తెలుగు"},
	{Code: "gu-IN", Name: "Gujarati", NativeScript: "ગુજરાતી"},
	{Code: "kn-IN", Name: "Kannada", NativeScript: "ಕನ್ನಡ"},
	{Code: "ml-IN", Name: "Malayalam", NativeScript: "മലയാളം"},
	{Code: "mr-IN", Name: "Marathi", NativeScript: "मराठी"},
	{Code: "pa-IN", Name: "Punjabi", NativeScript: "ਪੰਜਾਬੀ"},
	{Code: "od-IN", Name: "Odia", NativeScript: "ଓଡ଼ିଆ"},
	{Code: "en-IN", Name: "English", NativeScript: "English"},
}

var voices = []Voice{
	{ID: "anushka", Label: "Anushka"},
	{ID: "priya", Label: "Priya"},
	{ID: "kavya", Label: "Kavya"},
	{ID: "shreya", Label: "Shreya"},
	{ID: "vidya", Label: "Vidya"},
	{ID: "arya", Label: "Arya"},
	{ID: "aditya", Label: "Aditya"},
	{ID: "rahul", Label: "Rahul"},
	{ID: "rohan", Label: "Rohan"},
	{ID: "kabir", Label: "Kabir"},
}

// All returns the canonical ordered language list.
func All() []Language {
	return append([]Language(nil), languages...)
}

// Lookup finds a language by code.
func Lookup(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Select returns the languages for codes in the given order. An empty codes
// slice selects all languages.
func Select(codes []string) ([]Language, error) {
	if len(codes) == 0 {
		return All(), nil
	}

	selected := make([]Language, 0, len(codes))
	for _, code := range codes {
		l, ok := Lookup(code)
		if !ok {
			return nil, fmt.Errorf("unknown language code: %s", code)
		}
		selected = append(selected, l)
	}
	return selected, nil
}

// Voices returns the available voices.
func Voices() []Voice {
	return append([]Voice(nil), voices...)
}

// LookupVoice finds a voice by id.
func LookupVoice(id string) (Voice, bool) {
	for _, v := range voices {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}
