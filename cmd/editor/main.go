package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tilegrid/config"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	cfg.ApplyLogLevel()

	log.Info("editor starting", "levels", cfg.Levels.Dir, "config", cfg.Path())
	game, err := NewEditorGame(cfg)
	if err != nil {
		log.Fatal("start editor", "err", err)
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Level Editor")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run editor", "err", err)
	}
}
