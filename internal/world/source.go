package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFunc - коллаборатор загрузки карты: отдает уже декодированные данные
// по ID карты. Ядро не знает, откуда они берутся (файл, embed, сеть).
type LoadFunc func(mapID int) (*TileGrid, error)

// mapJSON - формат карты, извлеченной из оригинальных данных игры.
type mapJSON struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Layers [][][]int `json:"layers"` // [layer][y][x]
}

// FromJSON декодирует карту и проверяет инварианты размеров.
func FromJSON(data []byte) (*TileGrid, error) {
	var m mapJSON
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("map has invalid size %dx%d", m.Width, m.Height)
	}

	grid := &TileGrid{Width: m.Width, Height: m.Height}
	for i, raw := range m.Layers {
		if len(raw) != m.Height {
			return nil, fmt.Errorf("layer %d: %d rows, want %d", i, len(raw), m.Height)
		}
		layer := make(Layer, m.Height)
		for y, row := range raw {
			if len(row) != m.Width {
				return nil, fmt.Errorf("layer %d row %d: %d cols, want %d", i, y, len(row), m.Width)
			}
			layer[y] = append([]int(nil), row...)
		}
		grid.Layers = append(grid.Layers, layer)
	}
	return grid, nil
}

// DirLoader возвращает LoadFunc, читающий карты из каталога map<ID>.json.
func DirLoader(dir string) LoadFunc {
	return func(mapID int) (*TileGrid, error) {
		path := filepath.Join(dir, fmt.Sprintf("map%d.json", mapID))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read map %d: %w", mapID, err)
		}
		return FromJSON(data)
	}
}
