package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/nestframe/internal/pattern"
)

const (
	metadataFile = "metadata.json"
	gridFile     = "pattern.csv"
	artFile      = "art.txt"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type DrawingMetadata struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Padding    int       `json:"padding"`
	Corners    []int     `json:"corners"`
	Theme      string    `json:"theme,omitempty"`
	Horizontal int       `json:"horizontal_cells"`
	Vertical   int       `json:"vertical_cells"`
}

func (m DrawingMetadata) Dimensions() pattern.Dimensions {
	return pattern.Dimensions{Width: m.Width, Height: m.Height, Padding: m.Padding}
}

// Save writes the grid's metadata, its symbol codes as CSV and its text art
// into a new drawing directory and returns the drawing id.
func (s *Store) Save(d pattern.Dimensions, theme string, g pattern.Grid) (string, error) {
	now := time.Now()
	drawingID := fmt.Sprintf("%dx%dx%d_%d", d.Width, d.Height, d.Padding, now.UnixNano())
	drawingDir := filepath.Join(s.baseDir, drawingID)

	if err := os.MkdirAll(drawingDir, 0755); err != nil {
		return "", err
	}

	meta := DrawingMetadata{
		ID:         drawingID,
		Timestamp:  now,
		Width:      d.Width,
		Height:     d.Height,
		Padding:    d.Padding,
		Corners:    d.Corners(),
		Theme:      theme,
		Horizontal: g.Count(pattern.Horizontal),
		Vertical:   g.Count(pattern.Vertical),
	}

	metaFile, err := os.Create(filepath.Join(drawingDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeCodes(filepath.Join(drawingDir, gridFile), g); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(drawingDir, artFile), []byte(g.String()), 0644); err != nil {
		return "", err
	}

	return drawingID, nil
}

func writeCodes(path string, g pattern.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range g.Codes() {
		record := make([]string, len(row))
		for i, c := range row {
			record[i] = strconv.Itoa(c)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every saved drawing, oldest first.
func (s *Store) List() ([]DrawingMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []DrawingMetadata{}, nil
		}
		return nil, err
	}

	drawings := make([]DrawingMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		drawings = append(drawings, *meta)
	}

	sort.Slice(drawings, func(i, j int) bool {
		return drawings[i].Timestamp.Before(drawings[j].Timestamp)
	})
	return drawings, nil
}

func (s *Store) Load(drawingID string) (*DrawingMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, drawingID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta DrawingMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("drawing %s: %w", drawingID, err)
	}

	return &meta, nil
}

// LoadGrid reads the symbol codes of a saved drawing.
func (s *Store) LoadGrid(drawingID string) (pattern.Grid, error) {
	file, err := os.Open(filepath.Join(s.baseDir, drawingID, gridFile))
	if err != nil {
		return pattern.Grid{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return pattern.Grid{}, fmt.Errorf("drawing %s: %w", drawingID, err)
	}

	rows := make([][]pattern.Symbol, len(records))
	for i, record := range records {
		rows[i] = make([]pattern.Symbol, len(record))
		for j, field := range record {
			c, err := strconv.Atoi(field)
			if err != nil {
				return pattern.Grid{}, fmt.Errorf("drawing %s: row %d: %w", drawingID, i, err)
			}
			if c < 0 || c >= len(pattern.Alphabet) {
				return pattern.Grid{}, fmt.Errorf("drawing %s: %w: code %d at (%d,%d)", drawingID, pattern.ErrUnknownSymbol, c, i, j)
			}
			rows[i][j] = pattern.Symbol(c)
		}
	}

	return pattern.NewGrid(rows)
}

// LoadArt returns the text art of a saved drawing.
func (s *Store) LoadArt(drawingID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, drawingID, artFile))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Store) Delete(drawingID string) error {
	if _, err := s.Load(drawingID); err != nil {
		return err
	}
	return os.RemoveAll(filepath.Join(s.baseDir, drawingID))
}
