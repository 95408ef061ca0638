package main

import (
	"image"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/tilegrid/render"
)

const (
	paletteColumns = 3
	paletteStep    = 75
	paletteInset   = 50
	buttonWidth    = 120
	buttonHeight   = 36
)

// clicks collects widget activations between two editor ticks. Handlers only
// set flags; the tick turns them into a snapshot and clears them.
type clicks struct {
	save, load bool
	tile       int
	tileSet    bool
}

func (c *clicks) take() clicks {
	out := *c
	*c = clicks{}
	return out
}

// EditorUI is the side panel palette and the save/load buttons.
type EditorUI struct {
	UI      *ebitenui.UI
	palette []*widget.Graphic
	pending clicks
}

// BuildEditorUI lays out the palette in the side panel to the right of the
// grid and the buttons in the lower margin.
func BuildEditorUI(tiles *render.Catalog, gridW, gridH, sideMargin int, fontFace text.Face) *EditorUI {
	eu := &EditorUI{UI: &ebitenui.UI{}}
	eu.UI.PrimaryTheme = newEditorTheme(&fontFace)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(eu.buildPalette(tiles, sideMargin, gridH))
	root.AddChild(eu.buildButtons(eu.UI.PrimaryTheme, &fontFace, gridW))

	eu.UI.Container = root
	return eu
}

func (eu *EditorUI) buildPalette(tiles *render.Catalog, sideMargin, gridH int) *widget.Container {
	ts := tiles.TileSize()
	spacing := max(paletteStep-ts, 0)
	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(paletteColumns),
			widget.GridLayoutOpts.Spacing(spacing, spacing),
			widget.GridLayoutOpts.Padding(&widget.Insets{Top: paletteInset, Left: paletteInset}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sideMargin, gridH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for id := 0; id < tiles.Len(); id++ {
		idx := id
		g := widget.NewGraphic(
			widget.GraphicOpts.Image(tiles.Tile(id)),
			widget.GraphicOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(ts, ts),
				widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
					eu.pending.tile = idx
					eu.pending.tileSet = true
				}),
			),
		)
		eu.palette = append(eu.palette, g)
		panel.AddChild(g)
	}
	return panel
}

func (eu *EditorUI) buildButtons(theme *widget.Theme, fontFace *text.Face, gridW int) *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(200-buttonWidth),
			widget.RowLayoutOpts.Padding(&widget.Insets{Left: gridW / 2, Bottom: 50 - buttonHeight}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(buttonWidth, buttonHeight)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}
	bar.AddChild(newButton("Save", func() { eu.pending.save = true }))
	bar.AddChild(newButton("Load", func() { eu.pending.load = true }))
	return bar
}

// TileRect is the on-screen rectangle of palette entry id.
func (eu *EditorUI) TileRect(id int) (image.Rectangle, bool) {
	if id < 0 || id >= len(eu.palette) {
		return image.Rectangle{}, false
	}
	return eu.palette[id].GetWidget().Rect, true
}
