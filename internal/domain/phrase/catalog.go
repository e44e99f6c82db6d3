package phrase

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Catalog is the set of relay phrases and scenes the app offers.
type Catalog struct {
	Phrases []Phrase
	Scenes  []Scene
}

type catalogFile struct {
	Phrases []Phrase `toml:"phrase"`
}

// DefaultCatalog returns the built-in phrases and scenes.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Phrases: RelayPhrases(),
		Scenes:  Scenes(),
	}
}

// LoadCatalog returns the built-in catalog extended with relay phrases from a
// TOML file. A phrase whose id matches a built-in replaces it. An empty path
// returns the defaults.
//
//	[[phrase]]
//	id = "chai"
//	label = "Chai time"
//	[phrase.texts]
//	"hi-IN" = "चाय पियोगे?"
func LoadCatalog(path string) (*Catalog, error) {
	catalog := DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read phrase catalog: %w", err)
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse phrase catalog %s: %w", path, err)
	}

	for _, p := range file.Phrases {
		if p.ID == "" {
			return nil, fmt.Errorf("phrase catalog %s: phrase %q has no id", path, p.Label)
		}
		if p.Label == "" {
			p.Label = p.ID
		}
		catalog.add(p)
	}

	logrus.WithFields(logrus.Fields{
		"file":    path,
		"phrases": len(file.Phrases),
	}).Info("Loaded phrase catalog")

	return catalog, nil
}

func (c *Catalog) add(p Phrase) {
	for i := range c.Phrases {
		if c.Phrases[i].ID == p.ID {
			c.Phrases[i] = p
			return
		}
	}
	c.Phrases = append(c.Phrases, p)
}

// Phrase finds a relay phrase by id.
func (c *Catalog) Phrase(id string) (Phrase, bool) {
	for _, p := range c.Phrases {
		if p.ID == id {
			return p, true
		}
	}
	return Phrase{}, false
}

// Scene finds a scene by id.
func (c *Catalog) Scene(id string) (Scene, bool) {
	for _, s := range c.Scenes {
		if s.ID == id {
			return s, true
		}
	}
	return Scene{}, false
}
