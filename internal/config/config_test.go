package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/game"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "Main Table", cfg.Name)
	assert.Equal(t, 6, cfg.Seats)
	assert.Equal(t, 200, cfg.StartingStack)
	assert.Len(t, cfg.Players, 6, "empty seats are padded with bots")
	assert.Equal(t, "You", cfg.Players[0].Name)
	assert.Equal(t, "human", cfg.Players[0].Type)
}

func TestLoadParsesTableBlock(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
table "Home Game" {
  seats          = 4
  starting_stack = 500
  small_blind    = 5
  big_blind      = 10
  ante           = 1

  player "Dana" {
    type = "human"
  }

  player "Rook" {
    type    = "ai"
    profile = "Maniac"
  }
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Home Game", cfg.Name)
	assert.Equal(t, 4, cfg.Seats)
	assert.Equal(t, 500, cfg.StartingStack)
	assert.Equal(t, game.BlindStructure{SmallBlind: 5, BigBlind: 10, Ante: 1}, cfg.Blinds())

	require.Len(t, cfg.Players, 4)
	assert.Equal(t, PlayerConfig{Name: "Dana", Type: "human"}, cfg.Players[0])
	assert.Equal(t, PlayerConfig{Name: "Rook", Type: "ai", Profile: "Maniac"}, cfg.Players[1])
	assert.Equal(t, "Bot 3", cfg.Players[2].Name, "remaining seats are filled with bots")
	assert.Equal(t, "ai", cfg.Players[3].Type)
}

func TestLoadAppliesBlindDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
table "Minimal" {
  small_blind = 3
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.SmallBlind)
	assert.Equal(t, 6, cfg.BigBlind, "big blind defaults to twice the small blind")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `table "Broken" { seats = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
table "Crowded" {
  seats = 2

  player "A" {}
  player "B" {}
  player "C" {}
}
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := TableConfig{
		Name:          "OK",
		Seats:         6,
		StartingStack: 200,
		SmallBlind:    1,
		BigBlind:      2,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*TableConfig)
	}{
		{"too few seats", func(c *TableConfig) { c.Seats = 1 }},
		{"too many seats", func(c *TableConfig) { c.Seats = 11 }},
		{"zero small blind", func(c *TableConfig) { c.SmallBlind = 0 }},
		{"big blind not above small", func(c *TableConfig) { c.BigBlind = 1 }},
		{"negative ante", func(c *TableConfig) { c.Ante = -1 }},
		{"stack below big blind", func(c *TableConfig) { c.StartingStack = 1 }},
		{"bad player type", func(c *TableConfig) {
			c.Players = []PlayerConfig{{Name: "X", Type: "robot"}}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
