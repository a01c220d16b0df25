// Package config loads optional game configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// GameConfig is the full configuration for one interactive game:
//
//	seed = 42
//
//	player "cross" {
//	  type = "human"
//	  name = "Kolia"
//	}
//
//	player "circle" {
//	  type = "bot"
//	  name = "Silas"
//	}
type GameConfig struct {
	Seed    int64          `hcl:"seed,optional"`
	Players []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig configures one side of the game.
type PlayerConfig struct {
	Side string `hcl:"side,label"` // "cross" or "circle"
	Type string `hcl:"type"`       // "human", "random" or "bot"
	Name string `hcl:"name,optional"`
}

// DefaultGameConfig returns the out-of-the-box pairing: a human playing
// cross against the perfect-play bot.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Players: []PlayerConfig{
			{Side: "cross", Type: "human", Name: "You"},
			{Side: "circle", Type: "bot", Name: "Bot"},
		},
	}
}

// Load reads game configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*GameConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultGameConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg GameConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := cfg.applyDefaultsAndValidate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *GameConfig) applyDefaultsAndValidate() error {
	defaults := DefaultGameConfig()

	seen := map[string]bool{}
	for i := range c.Players {
		p := &c.Players[i]
		if p.Side != "cross" && p.Side != "circle" {
			return fmt.Errorf("unknown player side %q (want \"cross\" or \"circle\")", p.Side)
		}
		if seen[p.Side] {
			return fmt.Errorf("player %q configured twice", p.Side)
		}
		seen[p.Side] = true

		switch p.Type {
		case "human", "random", "bot":
		default:
			return fmt.Errorf("player %q: unknown type %q (want \"human\", \"random\" or \"bot\")", p.Side, p.Type)
		}
		if p.Name == "" {
			p.Name = p.Type
		}
	}

	// Fill in any side the file leaves out.
	for _, def := range defaults.Players {
		if !seen[def.Side] {
			c.Players = append(c.Players, def)
		}
	}
	return nil
}

// Player returns the configuration for the given side. Always present after
// Load or DefaultGameConfig.
func (c *GameConfig) Player(side string) (PlayerConfig, bool) {
	for _, p := range c.Players {
		if p.Side == side {
			return p, true
		}
	}
	return PlayerConfig{}, false
}
