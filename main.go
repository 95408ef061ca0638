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

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal("start game", "err", err)
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("tilegrid")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run game", "err", err)
	}
}
