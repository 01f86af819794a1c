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
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = ".bstguesser.yaml"
	statsFileName  = ".bstguesser.db"
)

type GameConfig struct {
	TreeSize int `yaml:"tree_size" toml:"tree_size" envconfig:"BSTGUESSER_GAME_TREE_SIZE"`
	MinKey   int `yaml:"min_key" toml:"min_key" envconfig:"BSTGUESSER_GAME_MIN_KEY"`
	MaxKey   int `yaml:"max_key" toml:"max_key" envconfig:"BSTGUESSER_GAME_MAX_KEY"`
	Targets  int `yaml:"targets" toml:"targets" envconfig:"BSTGUESSER_GAME_TARGETS"`
}

type DisplayConfig struct {
	ShowHeights bool `yaml:"show_heights" toml:"show_heights" envconfig:"BSTGUESSER_DISPLAY_SHOW_HEIGHTS"`
	NodeWidth   int  `yaml:"node_width" toml:"node_width" envconfig:"BSTGUESSER_DISPLAY_NODE_WIDTH"`
	Margin      int  `yaml:"margin" toml:"margin" envconfig:"BSTGUESSER_DISPLAY_MARGIN"`
}

type LogConfig struct {
	Path  string `yaml:"path" toml:"path" envconfig:"BSTGUESSER_LOG_PATH"`
	Level string `yaml:"level" toml:"level" envconfig:"BSTGUESSER_LOG_LEVEL"`
}

type StatsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled" envconfig:"BSTGUESSER_STATS_ENABLED"`
	Path    string `yaml:"path" toml:"path" envconfig:"BSTGUESSER_STATS_PATH"`
}

type Config struct {
	Game    GameConfig    `yaml:"game" toml:"game"`
	Display DisplayConfig `yaml:"display" toml:"display"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Stats   StatsConfig   `yaml:"stats" toml:"stats"`
}

func defaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			TreeSize: 10,
			MinKey:   1,
			MaxKey:   99,
			Targets:  3,
		},
		Display: DisplayConfig{
			ShowHeights: true,
			NodeWidth:   5,
			Margin:      2,
		},
		Log: LogConfig{
			Level: "info",
		},
		Stats: StatsConfig{
			Enabled: true,
		},
	}
}

// Validate rejects settings a round cannot be built from.
func (c *Config) Validate() error {
	g := c.Game
	if g.TreeSize < 1 {
		return fmt.Errorf("game.tree_size must be positive, got %d", g.TreeSize)
	}
	if g.MinKey >= g.MaxKey {
		return fmt.Errorf("game.min_key (%d) must be below game.max_key (%d)", g.MinKey, g.MaxKey)
	}
	span := uint64(g.MaxKey) - uint64(g.MinKey) + 1
	if span > math.MaxUint32 {
		return fmt.Errorf("key range %d..%d holds more than %d keys", g.MinKey, g.MaxKey, uint64(math.MaxUint32))
	}
	if span < uint64(g.TreeSize) {
		return fmt.Errorf("key range %d..%d holds %d keys, fewer than game.tree_size %d", g.MinKey, g.MaxKey, span, g.TreeSize)
	}
	if g.Targets < 1 || g.Targets > g.TreeSize {
		return fmt.Errorf("game.targets must be between 1 and %d, got %d", g.TreeSize, g.Targets)
	}
	// Node boxes are "[" key "]"; a wider label would spill out of the
	// clickable area.
	digits := max(len(strconv.Itoa(g.MinKey)), len(strconv.Itoa(g.MaxKey)))
	if want := max(3, digits+2); c.Display.NodeWidth < want {
		return fmt.Errorf("display.node_width must be at least %d for keys %d..%d, got %d", want, g.MinKey, g.MaxKey, c.Display.NodeWidth)
	}
	if c.Display.Margin < 0 {
		return fmt.Errorf("display.margin must not be negative, got %d", c.Display.Margin)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the configuration file at path, or ~/.bstguesser.yaml when
// path is empty, then applies BSTGUESSER_* environment overrides. A missing
// default file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	explicit := path != ""
	if !explicit {
		if p, err := getConfigPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		err := readConfigFile(path, config)
		if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return fallbackConfig(), err
		}
	}

	if err := envconfig.Process("", config); err != nil {
		return fallbackConfig(), fmt.Errorf("failed to read environment: %w", err)
	}

	if config.Stats.Path == "" {
		config.Stats.Path = defaultStatsPath()
	}

	if err := config.Validate(); err != nil {
		return fallbackConfig(), err
	}
	return config, nil
}

// fallbackConfig is what callers run with when the configuration is unusable.
func fallbackConfig() *Config {
	config := defaultConfig()
	config.Stats.Path = defaultStatsPath()
	return config
}

func defaultStatsPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return statsFileName
	}
	return filepath.Join(homeDir, statsFileName)
}

func readConfigFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), config); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings(config *Config) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 BST Guesser Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sGame:%s\n", Green, Reset)
	fmt.Printf("  • %stree_size%s: %d\n", Green, Reset, config.Game.TreeSize)
	fmt.Printf("  • %skeys%s: %d..%d\n", Green, Reset, config.Game.MinKey, config.Game.MaxKey)
	fmt.Printf("  • %stargets%s: %d\n\n", Green, Reset, config.Game.Targets)

	fmt.Printf("🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_heights%s: %t\n", Green, Reset, config.Display.ShowHeights)
	fmt.Printf("  • %snode_width%s: %d, %smargin%s: %d\n\n", Green, Reset, config.Display.NodeWidth, Green, Reset, config.Display.Margin)

	logPath := config.Log.Path
	if logPath == "" {
		logPath = "(disabled)"
	}
	fmt.Printf("📜 %sLog:%s %s at level %s\n", Green, Reset, logPath, config.Log.Level)
	fmt.Printf("📈 %sStats:%s enabled=%t %s\n\n", Green, Reset, config.Stats.Enabled, config.Stats.Path)

	fmt.Printf("💡 Every setting can be overridden with BSTGUESSER_<SECTION>_<KEY>, e.g. BSTGUESSER_GAME_TREE_SIZE=15\n")
}
