package colours

import "github.com/fatih/color"

// Color scheme for the CLI
var (
	Title   = color.New(color.FgCyan, color.Bold)
	Native  = color.New(color.FgWhite, color.Bold)
	Prompt  = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Success = color.New(color.FgGreen)
	Info    = color.New(color.FgBlue)
	Warning = color.New(color.FgYellow)
	Muted   = color.New(color.FgHiBlack)
)

// Accent colour per language, echoing each language's card in the relay.
var accents = map[string]*color.Color{
	"hi-IN": color.New(color.FgHiRed),
	"bn-IN": color.New(color.FgHiBlue),
	"ta-IN": color.New(color.FgGreen),
	"te-IN": color.New(color.FgYellow),
	"gu-IN": color.New(color.FgHiMagenta),
	"kn-IN": color.New(color.FgRed),
	"ml-IN": color.New(color.FgCyan),
	"mr-IN": color.New(color.FgMagenta),
	"pa-IN": color.New(color.FgHiYellow),
	"od-IN": color.New(color.FgHiCyan),
	"en-IN": color.New(color.FgWhite),
}

// Language returns the accent colour for a language code.
func Language(code string) *color.Color {
	if c, ok := accents[code]; ok {
		return c
	}
	return Info
}
