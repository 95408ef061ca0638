// Package render draws grids, tiles and HUD text with Ebiten. It is shared by
// the game and the editor binaries.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// placeholderColors stand in for tile images when none are on disk. Index 0
// is the background.
var placeholderColors = []color.RGBA{
	colornames.Forestgreen,
	colornames.Sienna,
	colornames.Crimson,
	colornames.Slategray,
	colornames.Goldenrod,
	colornames.Steelblue,
	colornames.Darkorchid,
	colornames.Teal,
}

// Catalog holds one tileSize square image per tile id.
type Catalog struct {
	tiles    []*ebiten.Image
	tileSize int
}

// LoadCatalog reads the PNG files in dir in file name order and scales each
// to tileSize. Ids with no image on disk get a solid placeholder, so the
// catalog always has exactly count entries.
func LoadCatalog(dir string, count, tileSize int) (*Catalog, error) {
	names, err := listImages(os.DirFS(dir))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("render: list %s: %w", dir, err)
	}
	if len(names) > count {
		log.Warn("more tile images than catalog entries", "dir", dir, "images", len(names), "catalog", count)
		names = names[:count]
	}

	c := &Catalog{tiles: make([]*ebiten.Image, count), tileSize: tileSize}
	for i, name := range names {
		img, err := LoadImage(filepath.Join(dir, name), tileSize, tileSize)
		if err != nil {
			return nil, err
		}
		c.tiles[i] = img
	}
	if len(names) < count {
		log.Warn("using placeholder tiles", "dir", dir, "images", len(names), "catalog", count)
	}
	for i := len(names); i < count; i++ {
		c.tiles[i] = Solid(tileSize, tileSize, PlaceholderColor(i))
	}
	return c, nil
}

// listImages returns the .png file names at the root of fsys, sorted.
func listImages(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".png") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (c *Catalog) Len() int      { return len(c.tiles) }
func (c *Catalog) TileSize() int { return c.tileSize }

// Tile returns the image for id, or nil when id has no image.
func (c *Catalog) Tile(id int) *ebiten.Image {
	if id < 0 || id >= len(c.tiles) {
		return nil
	}
	return c.tiles[id]
}

// PlaceholderColor is the fill used for tile id when it has no image.
func PlaceholderColor(id int) color.RGBA {
	if id < 0 {
		return colornames.Black
	}
	return placeholderColors[id%len(placeholderColors)]
}

// LoadImage decodes the image file at p and scales it to w x h.
func LoadImage(p string, w, h int) (*ebiten.Image, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("render: read %s: %w", p, err)
	}
	src, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", p, err)
	}
	return scaled(ebiten.NewImageFromImage(src), w, h), nil
}

// LoadSprite is LoadImage with a solid fallback when the file is missing or
// unreadable.
func LoadSprite(p string, w, h int, fallback color.Color) *ebiten.Image {
	img, err := LoadImage(p, w, h)
	if err != nil {
		log.Warn("using placeholder sprite", "path", p, "err", err)
		return Solid(w, h, fallback)
	}
	return img
}

// Solid returns a w x h image filled with clr.
func Solid(w, h int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	return img
}

func scaled(src *ebiten.Image, w, h int) *ebiten.Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}
