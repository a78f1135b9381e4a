// Package pool reads player pools from YAML or JSON files.
//
//	players:
//	  - id: p1
//	    name: Ada
//	    votes: 4
//	    stats: {finishing: 80, pace: 72}
package pool

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/lineup/internal/domain/model"
)

type playerDoc struct {
	ID    string         `yaml:"id"`
	Name  string         `yaml:"name"`
	Votes int            `yaml:"votes"`
	Stats map[string]int `yaml:"stats"`
}

type poolDoc struct {
	Players []playerDoc `yaml:"players"`
}

// Pool is a decoded player pool in file order.
type Pool struct {
	Players []model.Player
	// Warnings describes ignored input, such as unknown stat keys.
	Warnings []string
}

// Load reads and decodes the pool at path.
func Load(path string) (*Pool, error) {
	f, err := os.Open(path) //nolint:gosec // path is user supplied by design of the CLI
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadPool, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a pool document from r. JSON input is accepted as YAML.
func Decode(r io.Reader) (*Pool, error) {
	var doc poolDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Pool{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrDecodePool, err)
	}

	out := &Pool{Players: make([]model.Player, 0, len(doc.Players))}
	for i, pd := range doc.Players {
		p, unknown := model.NewPlayer(pd.ID, pd.Name, pd.Stats)
		p.VoteCount = pd.Votes
		label := p.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		for _, key := range unknown {
			out.Warnings = append(out.Warnings, fmt.Sprintf("player %s: unknown stat %q ignored", label, key))
		}
		out.Players = append(out.Players, p)
	}
	return out, nil
}
