package tiled

import (
	"encoding/json"
	"fmt"
	"os"
)

// Layer names the game looks up by literal string
const (
	LayerCollision     = "Collision"
	LayerInteractables = "Interactables"
	LayerBackground    = "Background"
	LayerForeground    = "Foreground"
	LayerTop           = "Top"
)

// Layer type discriminators used by the Tiled JSON format
const (
	TypeTileLayer   = "tilelayer"
	TypeObjectGroup = "objectgroup"
	TypeImageLayer  = "imagelayer"
)

// Map is a Tiled JSON (.tmj) map document
type Map struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	TileWidth  int          `json:"tilewidth"`
	TileHeight int          `json:"tileheight"`
	Layers     []Layer      `json:"layers"`
	Tilesets   []TilesetRef `json:"tilesets"`
	Properties Properties   `json:"properties"`
}

// Layer is a single map layer; fields are populated per Type
type Layer struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Data    []uint32 `json:"data"`
	Objects []Object `json:"objects"`
	Image   string   `json:"image"`
	Visible *bool    `json:"visible"`
}

// Object is a placed object in an object group
type Object struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	GID        uint32     `json:"gid"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Properties Properties `json:"properties"`
}

// Property is a string-keyed authored value
type Property struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Properties is an authored property bag
type Properties []Property

// TilesetRef links a firstgid to an external .tsx document
type TilesetRef struct {
	FirstGID uint32 `json:"firstgid"`
	Source   string `json:"source"`
}

// LoadMap parses a .tmj document from disk
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	return &m, nil
}

// LayerByName returns the first layer with the given name, or nil
func (m *Map) LayerByName(name string) *Layer {
	for i := range m.Layers {
		if m.Layers[i].Name == name {
			return &m.Layers[i]
		}
	}
	return nil
}

// PixelWidth returns the map width in pixels
func (m *Map) PixelWidth() int {
	return m.Width * m.TileWidth
}

// PixelHeight returns the map height in pixels
func (m *Map) PixelHeight() int {
	return m.Height * m.TileHeight
}

// String returns the string value of a named property
func (ps Properties) String(name string) (string, bool) {
	for _, p := range ps {
		if p.Name == name {
			s, ok := p.Value.(string)
			return s, ok
		}
	}
	return "", false
}

// Number returns the numeric value of a named property.
// Tiled writes int and float properties; JSON decodes both as float64.
func (ps Properties) Number(name string) (float64, bool) {
	for _, p := range ps {
		if p.Name == name {
			f, ok := p.Value.(float64)
			return f, ok
		}
	}
	return 0, false
}

// String returns the string value of a named object property
func (o *Object) String(name string) (string, bool) {
	return o.Properties.String(name)
}

// Number returns the numeric value of a named object property
func (o *Object) Number(name string) (float64, bool) {
	return o.Properties.Number(name)
}
