package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/tilegrid/config"
	"github.com/milk9111/tilegrid/editor"
	"github.com/milk9111/tilegrid/levels"
	"github.com/milk9111/tilegrid/render"
	"github.com/milk9111/tilegrid/world"
)

// EditorGame is the Ebiten game for the editor.
type EditorGame struct {
	editor  *editor.Editor
	ui      *EditorUI
	tiles   *render.Catalog
	font    text.Face
	watcher *config.Watcher

	tileSize    int
	gridW       int
	gridH       int
	sideMargin  int
	lowerMargin int
}

func NewEditorGame(cfg *config.Config) (*EditorGame, error) {
	grid, err := world.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.CatalogSize)
	if err != nil {
		return nil, err
	}
	tiles, err := render.LoadCatalog(cfg.Tiles.ImageDir, cfg.Grid.CatalogSize, cfg.Grid.TileSize)
	if err != nil {
		return nil, err
	}

	g := &EditorGame{
		editor:      editor.New(grid, levels.NewStore(cfg.Levels.Dir, cfg.Shape()), cfg.Grid.TileSize),
		tiles:       tiles,
		font:        render.Face(15),
		tileSize:    cfg.Grid.TileSize,
		gridW:       cfg.Grid.Cols * cfg.Grid.TileSize,
		gridH:       cfg.Grid.Rows * cfg.Grid.TileSize,
		sideMargin:  cfg.Editor.SideMargin,
		lowerMargin: cfg.Editor.LowerMargin,
	}
	g.ui = BuildEditorUI(tiles, g.gridW, g.gridH, g.sideMargin, g.font)

	if err := os.MkdirAll(cfg.Levels.Dir, 0o755); err != nil {
		log.Warn("level directory unavailable", "dir", cfg.Levels.Dir, "err", err)
	} else if w, err := config.NewWatcher(config.IsLevelFile, cfg.Levels.Dir); err != nil {
		log.Warn("level watcher disabled", "dir", cfg.Levels.Dir, "err", err)
	} else {
		g.watcher = w
	}
	return g, nil
}

func (g *EditorGame) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *EditorGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.reportDiskChanges()

	g.ui.UI.Update()
	if err := g.editor.Update(pollSnapshot(g.ui.pending.take())); err != nil {
		var fe *levels.FormatError
		switch {
		case errors.Is(err, levels.ErrNotFound):
			log.Warn("no saved level", "level", g.editor.Level(), "err", err)
		case errors.As(err, &fe):
			log.Error("malformed level", "path", fe.Path, "line", fe.Line, "column", fe.Column, "err", err)
		default:
			log.Error("level i/o failed", "err", err)
		}
	}
	return nil
}

// reportDiskChanges logs level files changed outside the editor. The grid is
// only ever replaced by an explicit load.
func (g *EditorGame) reportDiskChanges() {
	if g.watcher == nil {
		return
	}
	for {
		p, ok := g.watcher.Poll()
		if !ok {
			break
		}
		log.Info("level file changed on disk", "path", p)
	}
	select {
	case err := <-g.watcher.Errors:
		log.Warn("level watcher", "err", err)
	default:
	}
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	grid := g.editor.Grid()
	screen.Fill(colornames.Forestgreen)
	render.DrawBackground(screen, grid, g.tiles)
	render.DrawTiles(screen, grid, g.tiles, world.TileBackground+1)
	render.DrawGridLines(screen, grid.Rows(), grid.Cols(), g.tileSize, colornames.White)

	hudY := float64(g.gridH + g.lowerMargin)
	render.DrawText(screen, fmt.Sprintf("Level: %d", g.editor.Level()), g.font, 10, hudY-90, colornames.White)
	render.DrawText(screen, "Press UP or DOWN to change level", g.font, 10, hudY-60, colornames.White)
	if g.editor.SavedVisible() {
		render.DrawText(screen, "SAVED", g.font, 416, hudY-90, colornames.White)
	}

	vector.FillRect(screen, float32(g.gridW), 0, float32(g.sideMargin), float32(g.gridH), colornames.Forestgreen, false)
	g.ui.UI.Draw(screen)

	if r, ok := g.ui.TileRect(g.editor.Selected()); ok {
		render.DrawOutline(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 3, colornames.Red)
	}
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridW + g.sideMargin, g.gridH + g.lowerMargin
}
