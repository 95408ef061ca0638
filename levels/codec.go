// Package levels reads and writes level records: one CSV file per level
// index, Rows lines of Cols comma-separated tile ids.
package levels

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/milk9111/tilegrid/world"
)

// Shape describes the grids a store reads and writes.
type Shape struct {
	Rows        int
	Cols        int
	CatalogSize int
	// PickupTile is counted while decoding so the game never rescans for it.
	PickupTile int
}

// Store loads and saves levels by index. Reads go through an fs.FS; writes go
// straight to dir.
type Store struct {
	dir   string
	fsys  fs.FS
	shape Shape
}

// NewStore returns a store that reads and writes level files in dir.
func NewStore(dir string, shape Shape) *Store {
	return &Store{dir: dir, fsys: os.DirFS(dir), shape: shape}
}

// NewReadOnlyStore returns a store that only reads from fsys.
func NewReadOnlyStore(fsys fs.FS, shape Shape) *Store {
	return &Store{fsys: fsys, shape: shape}
}

// FileName returns the record name for a level index.
func FileName(index int) string {
	return fmt.Sprintf("level%d_data.csv", index)
}

func (s *Store) Dir() string  { return s.dir }
func (s *Store) Shape() Shape { return s.shape }

// Path returns where Save writes the given level.
func (s *Store) Path(index int) string {
	return filepath.Join(s.dir, FileName(index))
}

// Load decodes the record for index into a new grid and returns it along with
// the number of pickup tiles it contains.
func (s *Store) Load(index int) (*world.Grid, int, error) {
	name := FileName(index)
	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, 0, fmt.Errorf("levels: open %s: %w", name, err)
	}
	defer f.Close()

	return Decode(f, name, s.shape)
}

// Save writes g as the record for index, replacing any existing file.
//
// The file is truncated and written in place, so a crash mid-write can leave
// a previously valid record corrupt.
func (s *Store) Save(index int, g *world.Grid) error {
	if s.dir == "" {
		return ErrReadOnly
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("levels: create dir %s: %w", s.dir, err)
	}
	path := s.Path(index)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("levels: create %s: %w", path, err)
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return fmt.Errorf("levels: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("levels: close %s: %w", path, err)
	}
	return nil
}

// Encode writes g row-major, one CRLF-terminated line per row.
func Encode(w io.Writer, g *world.Grid) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	record := make([]string, g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c, id := range g.Row(r) {
			record[c] = strconv.Itoa(id)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Decode reads a whole record. name is only used in error messages. Nothing
// is returned unless the entire record is valid.
func Decode(r io.Reader, name string, shape Shape) (*world.Grid, int, error) {
	g, err := world.NewGrid(shape.Rows, shape.Cols, shape.CatalogSize)
	if err != nil {
		return nil, 0, fmt.Errorf("levels: %s: %w", name, err)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	pickups := 0
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fe := &FormatError{Path: name, Reason: "malformed csv", Err: err}
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				fe.Line, fe.Column = pe.Line, pe.Column
			}
			return nil, 0, fe
		}
		line, _ := cr.FieldPos(0)
		if row >= shape.Rows {
			return nil, 0, &FormatError{
				Path:   name,
				Line:   line,
				Reason: fmt.Sprintf("more than %d rows", shape.Rows),
			}
		}
		if len(record) != shape.Cols {
			return nil, 0, &FormatError{
				Path:   name,
				Line:   line,
				Reason: fmt.Sprintf("row %d has %d columns, want %d", row, len(record), shape.Cols),
			}
		}
		for col, field := range record {
			id, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, 0, &FormatError{
					Path:   name,
					Line:   line,
					Column: col + 1,
					Reason: fmt.Sprintf("tile %q is not an integer", field),
					Err:    err,
				}
			}
			if !g.Set(world.Cell{Row: row, Col: col}, id) {
				return nil, 0, &FormatError{
					Path:   name,
					Line:   line,
					Column: col + 1,
					Reason: fmt.Sprintf("tile id %d outside [%d, %d)", id, world.TileEmpty, shape.CatalogSize),
				}
			}
			if id == shape.PickupTile {
				pickups++
			}
		}
		row++
	}
	if row != shape.Rows {
		return nil, 0, &FormatError{
			Path:   name,
			Reason: fmt.Sprintf("got %d rows, want %d", row, shape.Rows),
		}
	}
	return g, pickups, nil
}
