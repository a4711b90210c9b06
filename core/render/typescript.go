// Package render — TypeScript renderer.
// Emits a typed data module the front end imports directly, including the
// date-based getTodaysPlayer rotation.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/careerladder/core"
)

const tsHeader = `// Auto-generated player data from Transfermarkt

export interface PuzzleConfig {
  initialClubs: [string, string];
  thirdClub: string;
  difficulty: number;
}

export interface Player {
  id: string;
  canonical: string;
  clubs: string[];
  years: string[];
  puzzleConfig: PuzzleConfig;
}

`

const tsRotation = `

// Get today's player (date-based rotation)
export const getTodaysPlayer = (): Player => {
  const daysSinceEpoch = Math.floor(Date.now() / (1000 * 60 * 60 * 24));
  const index = daysSinceEpoch % players.length;
  return players[index];
};
`

// TypeScriptRenderer produces a .ts data module.
type TypeScriptRenderer struct{}

// NewTypeScriptRenderer creates a TypeScriptRenderer.
func NewTypeScriptRenderer() *TypeScriptRenderer {
	return &TypeScriptRenderer{}
}

// Render implements core.Renderer. Source URLs are not part of the module.
func (r *TypeScriptRenderer) Render(players []core.PlayerRecord) ([]byte, error) {
	entries := make([]playerJSON, 0, len(players))
	for _, rec := range players {
		p := toPlayerJSON(rec)
		p.Source = ""
		entries = append(entries, p)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling players: %w", err)
	}

	var b strings.Builder
	b.WriteString(tsHeader)
	b.WriteString("export const players: Player[] = ")
	b.Write(data)
	b.WriteString(";")
	b.WriteString(tsRotation)
	return []byte(b.String()), nil
}

// Extension returns the file extension for TypeScript output.
func (r *TypeScriptRenderer) Extension() string {
	return ".ts"
}
