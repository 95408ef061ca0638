// Package config loads the tuning shared by the editor and the game.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/tilegrid/levels"
	"github.com/milk9111/tilegrid/obj"
)

// DefaultPath is read when neither an explicit path nor TILEGRID_CONFIG is
// set.
const DefaultPath = "tilegrid.yaml"

const (
	envConfig    = "TILEGRID_CONFIG"
	envLevelDir  = "TILEGRID_LEVEL_DIR"
	envPlayLevel = "TILEGRID_PLAY_LEVEL"
	envLogLevel  = "TILEGRID_LOG_LEVEL"
)

type Config struct {
	LogLevel  string          `yaml:"log_level"`
	TPS       int             `yaml:"tps"`
	Grid      GridConfig      `yaml:"grid"`
	Tiles     TilesConfig     `yaml:"tiles"`
	Levels    LevelsConfig    `yaml:"levels"`
	Player    PlayerConfig    `yaml:"player"`
	Editor    EditorConfig    `yaml:"editor"`
	Collision CollisionConfig `yaml:"collision"`

	// path is the file the config was read from; empty for embedded defaults.
	path string
}

type GridConfig struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	TileSize    int `yaml:"tile_size"`
	CatalogSize int `yaml:"catalog_size"`
}

type TilesConfig struct {
	Pickup   int    `yaml:"pickup"`
	ImageDir string `yaml:"image_dir"`
}

type LevelsConfig struct {
	Dir       string `yaml:"dir"`
	PlayLevel int    `yaml:"play_level"`
	// Bundled makes play mode read the levels compiled into the binary.
	Bundled bool `yaml:"bundled"`
}

type PlayerConfig struct {
	Speed           float32 `yaml:"speed"`
	Size            float32 `yaml:"size"`
	SpawnRow        int     `yaml:"spawn_row"`
	SpawnCol        int     `yaml:"spawn_col"`
	HealthIncrement int     `yaml:"health_increment"`
	Image           string  `yaml:"image"`
	RewardScript    string  `yaml:"reward_script"`
}

type EditorConfig struct {
	SideMargin  int `yaml:"side_margin"`
	LowerMargin int `yaml:"lower_margin"`
}

type CollisionConfig struct {
	BroadPhase bool `yaml:"broad_phase"`
	DebugDraw  bool `yaml:"debug_draw"`
}

// Default returns the configuration compiled into the binary.
func Default() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic("config: embedded defaults: " + err.Error())
	}
	return cfg
}

// Parse overlays data on the embedded defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal defaults: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the config at path, or TILEGRID_CONFIG, or DefaultPath, in that
// order of preference. A missing file falls back to the embedded defaults.
// Variables from a .env file in the working directory are loaded first and
// environment overrides are applied last.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env not loaded", "err", err)
	}
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("config file not found, using defaults", "path", path)
		data, path = nil, ""
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if dir := os.Getenv(envLevelDir); dir != "" {
		c.Levels.Dir = dir
	}
	if s := os.Getenv(envPlayLevel); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", envPlayLevel, s, err)
		}
		c.Levels.PlayLevel = n
	}
	if lvl := os.Getenv(envLogLevel); lvl != "" {
		c.LogLevel = lvl
	}
	return nil
}

// Path returns the file the config was read from, or "" for the defaults.
func (c *Config) Path() string { return c.path }

func (c *Config) Validate() error {
	switch {
	case c.Grid.Rows <= 0 || c.Grid.Cols <= 0:
		return fmt.Errorf("config: grid must be at least 1x1, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	case c.Grid.TileSize <= 0:
		return fmt.Errorf("config: tile_size must be positive, got %d", c.Grid.TileSize)
	case c.Grid.CatalogSize <= 0:
		return fmt.Errorf("config: catalog_size must be positive, got %d", c.Grid.CatalogSize)
	case c.Tiles.Pickup <= 0 || c.Tiles.Pickup >= c.Grid.CatalogSize:
		return fmt.Errorf("config: pickup tile %d outside [1, %d)", c.Tiles.Pickup, c.Grid.CatalogSize)
	case c.TPS <= 0:
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	case c.Levels.PlayLevel < 0:
		return fmt.Errorf("config: play_level must not be negative, got %d", c.Levels.PlayLevel)
	case c.Player.Speed < 0:
		return fmt.Errorf("config: player speed must not be negative, got %v", c.Player.Speed)
	case c.Player.Size <= 0:
		return fmt.Errorf("config: player size must be positive, got %v", c.Player.Size)
	case c.Player.Size > float32(c.Grid.TileSize*min(c.Grid.Rows, c.Grid.Cols)):
		return fmt.Errorf("config: player size %v does not fit the play area", c.Player.Size)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}

// ApplyLogLevel sets the global logger's level.
func (c *Config) ApplyLogLevel() {
	if lvl, err := log.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
}

// Shape is the level shape the codec reads and writes.
func (c *Config) Shape() levels.Shape {
	return levels.Shape{
		Rows:        c.Grid.Rows,
		Cols:        c.Grid.Cols,
		CatalogSize: c.Grid.CatalogSize,
		PickupTile:  c.Tiles.Pickup,
	}
}

// Rules are the gameplay values the player update reads.
func (c *Config) Rules() obj.Rules {
	return obj.Rules{
		TileSize:        c.Grid.TileSize,
		PickupTile:      c.Tiles.Pickup,
		HealthIncrement: c.Player.HealthIncrement,
	}
}

// LevelStore returns the store play mode reads from: the bundled levels when
// configured, otherwise the level directory.
func (c *Config) LevelStore() *levels.Store {
	if c.Levels.Bundled {
		return levels.Bundled(c.Shape())
	}
	return levels.NewStore(c.Levels.Dir, c.Shape())
}
