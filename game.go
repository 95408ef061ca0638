package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/tilegrid/config"
	"github.com/milk9111/tilegrid/obj"
	"github.com/milk9111/tilegrid/render"
	"github.com/milk9111/tilegrid/script"
	"github.com/milk9111/tilegrid/world"
)

type Game struct {
	cfg *config.Config

	level  *obj.Level
	state  *obj.GameState
	player *obj.Player

	tiles     *render.Catalog
	playerImg *ebiten.Image
	hud       text.Face
	watcher   *config.Watcher
	announced bool
	screenW   int
	screenH   int
}

// NewGame loads the configured level. A missing or malformed level is an
// error: there is no default grid to fall back to.
func NewGame(cfg *config.Config) (*Game, error) {
	store := cfg.LevelStore()
	grid, pickups, err := store.Load(cfg.Levels.PlayLevel)
	if err != nil {
		return nil, err
	}
	log.Info("loaded level", "index", cfg.Levels.PlayLevel, "pickups", pickups, "bundled", cfg.Levels.Bundled)

	tiles, err := render.LoadCatalog(cfg.Tiles.ImageDir, cfg.Grid.CatalogSize, cfg.Grid.TileSize)
	if err != nil {
		return nil, err
	}

	rules := cfg.Rules()
	if rules.Reward, err = loadReward(cfg.Player.RewardScript); err != nil {
		return nil, err
	}
	level := obj.NewLevel(grid, rules, cfg.Collision.BroadPhase)
	x, y := level.SpawnPosition(world.Cell{Row: cfg.Player.SpawnRow, Col: cfg.Player.SpawnCol})
	size := int(cfg.Player.Size)

	g := &Game{
		cfg:       cfg,
		level:     level,
		state:     obj.NewGameState(pickups),
		player:    obj.NewPlayer(x, y, cfg.Player.Size, cfg.Player.Speed),
		tiles:     tiles,
		playerImg: render.LoadSprite(cfg.Player.Image, size, size, colornames.Royalblue),
		hud:       render.Face(20),
		screenW:   grid.Cols() * cfg.Grid.TileSize,
		screenH:   grid.Rows() * cfg.Grid.TileSize,
	}

	if cfg.Path() != "" {
		w, err := config.WatchFile(cfg.Path())
		if err != nil {
			log.Warn("config hot reload disabled", "path", cfg.Path(), "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.reloadConfig()

	g.player.Update(readControls(), g.level, g.state)

	if g.state.Won() && !g.announced {
		g.announced = true
		log.Info("level complete", "health", g.state.Health, "pickups", g.state.Collected)
	}
	return nil
}

// reloadConfig applies tunables that do not change the grid shape when the
// config file is rewritten.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	if _, ok := g.watcher.Poll(); !ok {
		return
	}
	cfg, err := config.Load(g.cfg.Path())
	if err != nil {
		log.Warn("config reload failed", "err", err)
		return
	}
	reward, err := loadReward(cfg.Player.RewardScript)
	if err != nil {
		log.Warn("reward script reload failed", "err", err)
		return
	}
	cfg.ApplyLogLevel()
	g.player.Speed = cfg.Player.Speed
	g.level.Rules.HealthIncrement = cfg.Player.HealthIncrement
	g.level.Rules.Reward = reward
	g.cfg = cfg
	log.Info("config reloaded", "speed", cfg.Player.Speed, "health_increment", cfg.Player.HealthIncrement)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Forestgreen)
	render.DrawBackground(screen, g.level.Grid, g.tiles)
	render.DrawTiles(screen, g.level.Grid, g.tiles, world.TileBackground)
	if si := g.level.Index(); si != nil && g.cfg.Collision.DebugDraw {
		render.DrawSpace(screen, si.Space())
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.player.X), float64(g.player.Y))
	screen.DrawImage(g.playerImg, op)

	render.DrawText(screen, fmt.Sprintf("Health: %d", g.state.Health), g.hud, 10, 10, colornames.White)
	if g.state.Won() {
		render.DrawTextCentered(screen, "You Win!", g.hud, float64(g.screenW)/2, float64(g.screenH)/2, colornames.White)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// loadReward compiles the pickup reward script at path. An empty path keeps
// the fixed health increment. Script errors at play time fall back to the
// increment for that pickup.
func loadReward(path string) (func(obj.GameState, int) int, error) {
	if path == "" {
		return nil, nil
	}
	r, err := script.LoadReward(path)
	if err != nil {
		return nil, err
	}
	log.Info("using reward script", "path", path)
	return func(s obj.GameState, increment int) int {
		n, err := r.Eval(s.Health, s.Collected, s.Total, increment)
		if err != nil {
			log.Warn("reward script failed", "err", err)
			return increment
		}
		return n
	}, nil
}
