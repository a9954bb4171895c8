package repository

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/advisorhub/agentcrm/models"
)

//go:embed seed.json
var embeddedSeed []byte

// SeedData is the startup data feed: the advisor profile and the initial
// customer book.
type SeedData struct {
	Agent     models.Agent      `json:"agent"`
	Customers []models.Customer `json:"customers"`
}

// LoadSeed decodes the seed book, from path when given, else from the
// embedded copy.
func LoadSeed(path string) (*SeedData, error) {
	raw := embeddedSeed
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	var seed SeedData
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return &seed, nil
}
