// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
game:
  tree_size: 15
  max_key: 50
display:
  show_heights: false
stats:
  path: /tmp/rounds.db
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Game.TreeSize != 15 || config.Game.MaxKey != 50 {
		t.Errorf("game = %+v, want tree_size 15 and max_key 50", config.Game)
	}
	if config.Game.MinKey != 1 || config.Game.Targets != 3 {
		t.Errorf("game = %+v, want untouched defaults for min_key and targets", config.Game)
	}
	if config.Display.ShowHeights {
		t.Error("display.show_heights = true, want false")
	}
	if config.Stats.Path != "/tmp/rounds.db" {
		t.Errorf("stats.path = %q, want /tmp/rounds.db", config.Stats.Path)
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[game]
tree_size = 12
targets = 4

[log]
path = "/tmp/bstguesser.log"
level = "debug"
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Game.TreeSize != 12 || config.Game.Targets != 4 {
		t.Errorf("game = %+v, want tree_size 12 and targets 4", config.Game)
	}
	if config.Log.Path != "/tmp/bstguesser.log" || config.Log.Level != "debug" {
		t.Errorf("log = %+v", config.Log)
	}
	if config.Display.NodeWidth != 5 {
		t.Errorf("display.node_width = %d, want default 5", config.Display.NodeWidth)
	}
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "config.yaml", "game:\n  tree_size: 15\n")
	t.Setenv("BSTGUESSER_GAME_TREE_SIZE", "20")
	t.Setenv("BSTGUESSER_DISPLAY_SHOW_HEIGHTS", "false")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Game.TreeSize != 20 {
		t.Errorf("game.tree_size = %d, want 20 from the environment", config.Game.TreeSize)
	}
	if config.Display.ShowHeights {
		t.Error("display.show_heights = true, want false from the environment")
	}
	if config.Log.Path != "" {
		t.Errorf("log.path = %q, want empty", config.Log.Path)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("missing default file should not fail, got %v", err)
	}
	if want := filepath.Join(home, statsFileName); config.Stats.Path != want {
		t.Errorf("stats.path = %q, want %q", config.Stats.Path, want)
	}

	config, err = LoadConfig(filepath.Join(home, "nope.yaml"))
	if err == nil {
		t.Fatal("missing explicit file should fail")
	}
	if config == nil || config.Game.TreeSize != 10 || config.Stats.Path == "" {
		t.Errorf("fallback config = %+v, want defaults", config)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "config.yaml", "game: [not, a, map\n")
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("LoadConfig() error = %v, want a parse error", err)
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		Name    string
		Mutate  func(c *Config)
		WantErr string
	}{
		{Name: "Defaults", Mutate: func(c *Config) {}},
		{Name: "Empty tree", Mutate: func(c *Config) { c.Game.TreeSize = 0 }, WantErr: "tree_size"},
		{Name: "Inverted key range", Mutate: func(c *Config) { c.Game.MinKey = 10; c.Game.MaxKey = 5 }, WantErr: "min_key"},
		{Name: "Range smaller than tree", Mutate: func(c *Config) { c.Game.MaxKey = 5 }, WantErr: "key range"},
		{Name: "Too many targets", Mutate: func(c *Config) { c.Game.Targets = 11 }, WantErr: "targets"},
		{Name: "No targets", Mutate: func(c *Config) { c.Game.Targets = 0 }, WantErr: "targets"},
		{Name: "Narrow nodes", Mutate: func(c *Config) { c.Display.NodeWidth = 2 }, WantErr: "node_width"},
		{Name: "Negative margin", Mutate: func(c *Config) { c.Display.Margin = -1 }, WantErr: "margin"},
		{Name: "Range wider than 32 bits", Mutate: func(c *Config) {
			c.Game.MinKey = math.MinInt32
			c.Game.MaxKey = math.MaxInt32
			c.Display.NodeWidth = 13
		}, WantErr: "more than"},
		{Name: "Wide keys need wide nodes", Mutate: func(c *Config) { c.Game.MaxKey = 12345 }, WantErr: "node_width must be at least 7"},
		{Name: "Negative keys count the sign", Mutate: func(c *Config) { c.Game.MinKey = -1000 }, WantErr: "node_width must be at least 7"},
		{Name: "Wide keys in wide nodes", Mutate: func(c *Config) { c.Game.MaxKey = 12345; c.Display.NodeWidth = 7 }},
		{Name: "Unknown log level", Mutate: func(c *Config) { c.Log.Level = "loud" }, WantErr: "log.level"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			config := defaultConfig()
			tc.Mutate(config)
			err := config.Validate()
			if tc.WantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.WantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tc.WantErr)
			}
		})
	}
}

func TestCreateDefaultConfigFileRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile() error = %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := defaultConfig()
	if config.Game != want.Game || config.Display != want.Display || config.Log != want.Log {
		t.Errorf("config = %+v, want %+v", config, want)
	}
}
