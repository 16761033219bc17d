// Package config loads table configuration from HCL files. The engine
// itself never reads files; this layer produces plain structured data
// that the CLI passes in.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-engine/internal/game"
)

// File is the root of a configuration file
type File struct {
	Table TableConfig `hcl:"table,block"`
}

// TableConfig defines one table: seats, stacks, blinds and the players
// to seat.
type TableConfig struct {
	Name          string         `hcl:"name,label"`
	Seats         int            `hcl:"seats,optional"`
	StartingStack int            `hcl:"starting_stack,optional"`
	SmallBlind    int            `hcl:"small_blind,optional"`
	BigBlind      int            `hcl:"big_blind,optional"`
	Ante          int            `hcl:"ante,optional"`
	Players       []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig defines one configured seat
type PlayerConfig struct {
	Name    string `hcl:"name,label"`
	Type    string `hcl:"type,optional"`    // "human" or "ai"
	Profile string `hcl:"profile,optional"` // AI style, e.g. "Casual", "Solid"
}

// Blinds returns the table's blind structure
func (c *TableConfig) Blinds() game.BlindStructure {
	return game.BlindStructure{
		SmallBlind: c.SmallBlind,
		BigBlind:   c.BigBlind,
		Ante:       c.Ante,
	}
}

// Default returns the default six-seat 1/2 table with one human seat and
// AI filler.
func Default() *TableConfig {
	return applyDefaults(&TableConfig{
		Name: "Main Table",
		Players: []PlayerConfig{
			{Name: "You", Type: "human"},
			{Name: "Ava", Type: "ai", Profile: "Casual"},
			{Name: "Blake", Type: "ai", Profile: "Solid"},
		},
	})
}

// Load reads a table configuration from an HCL file. A missing file
// yields the default table.
func Load(filename string) (*TableConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var root File
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	cfg := applyDefaults(&root.Table)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills unset fields and pads empty seats with AI players
func applyDefaults(cfg *TableConfig) *TableConfig {
	if cfg.Name == "" {
		cfg.Name = "Main Table"
	}
	if cfg.Seats == 0 {
		cfg.Seats = 6
	}
	if cfg.StartingStack == 0 {
		cfg.StartingStack = 200
	}
	if cfg.SmallBlind == 0 {
		cfg.SmallBlind = 1
	}
	if cfg.BigBlind == 0 {
		cfg.BigBlind = cfg.SmallBlind * 2
	}
	for i := range cfg.Players {
		if cfg.Players[i].Type == "" {
			cfg.Players[i].Type = "ai"
		}
		if cfg.Players[i].Type == "ai" && cfg.Players[i].Profile == "" {
			cfg.Players[i].Profile = "Casual"
		}
	}
	for seat := len(cfg.Players); seat < cfg.Seats; seat++ {
		cfg.Players = append(cfg.Players, PlayerConfig{
			Name:    fmt.Sprintf("Bot %d", seat+1),
			Type:    "ai",
			Profile: "Casual",
		})
	}
	return cfg
}

// Validate checks blind ordering, seat bounds and player types
func (c *TableConfig) Validate() error {
	if c.Seats < 2 || c.Seats > 10 {
		return fmt.Errorf("table %s: seats must be between 2 and 10, got %d", c.Name, c.Seats)
	}
	if c.SmallBlind <= 0 {
		return fmt.Errorf("table %s: small blind must be positive", c.Name)
	}
	if c.BigBlind <= c.SmallBlind {
		return fmt.Errorf("table %s: big blind must be greater than small blind", c.Name)
	}
	if c.Ante < 0 {
		return fmt.Errorf("table %s: ante must be non-negative", c.Name)
	}
	if c.StartingStack < c.BigBlind {
		return fmt.Errorf("table %s: starting stack must cover the big blind", c.Name)
	}
	if len(c.Players) > c.Seats {
		return fmt.Errorf("table %s: %d players configured for %d seats", c.Name, len(c.Players), c.Seats)
	}
	for _, p := range c.Players {
		if p.Type != "human" && p.Type != "ai" {
			return fmt.Errorf("table %s: player %s has invalid type %q", c.Name, p.Name, p.Type)
		}
	}
	return nil
}
