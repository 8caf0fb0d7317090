// Package catalog holds the static device catalog used for enumeration and
// for telling "unknown device" apart from "known device without prices".
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/device-quote/pkg/normalize"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

//go:embed devices.yaml
var defaultDevices []byte

type file struct {
	Devices []domain.Device `yaml:"devices"`
}

// Catalog is an immutable, id-indexed list of devices.
type Catalog struct {
	devices []domain.Device
	byID    map[string]int
}

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	Brand    string
	Category domain.Category
	Query    string
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultDevices)
}

// Load reads a catalog file, falling back to the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML. Device ids are normalized; a missing id is
// derived from brand and model.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]int, len(f.Devices))}
	for i, d := range f.Devices {
		raw := d.NormalizedID
		if raw == "" {
			raw = d.Brand + " " + d.Model
		}
		d.NormalizedID = normalize.DeviceID(raw)
		if d.NormalizedID == "" {
			return nil, fmt.Errorf("device %d: id or brand and model is required", i)
		}
		if !d.Category.Valid() {
			return nil, fmt.Errorf("device %q: invalid category %q", d.NormalizedID, d.Category)
		}
		if _, dup := c.byID[d.NormalizedID]; dup {
			return nil, fmt.Errorf("device %q: duplicate id", d.NormalizedID)
		}
		c.byID[d.NormalizedID] = len(c.devices)
		c.devices = append(c.devices, d)
	}

	slices.SortFunc(c.devices, func(a, b domain.Device) int {
		return strings.Compare(a.NormalizedID, b.NormalizedID)
	})
	for i, d := range c.devices {
		c.byID[d.NormalizedID] = i
	}

	return c, nil
}

// Len returns the number of devices.
func (c *Catalog) Len() int { return len(c.devices) }

// Get returns the device with the given normalized id.
func (c *Catalog) Get(id string) (domain.Device, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Device{}, false
	}
	return c.devices[i], true
}

// Contains reports whether id is a catalog device.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// List returns devices matching f, ordered by id.
func (c *Catalog) List(f Filter) []domain.Device {
	brand := strings.ToLower(strings.TrimSpace(f.Brand))
	query := normalize.DeviceID(f.Query)

	out := make([]domain.Device, 0, len(c.devices))
	for _, d := range c.devices {
		if brand != "" && strings.ToLower(d.Brand) != brand {
			continue
		}
		if f.Category != "" && d.Category != f.Category {
			continue
		}
		if query != "" && !strings.Contains(d.NormalizedID, query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Brands returns the distinct brands, sorted.
func (c *Catalog) Brands() []string {
	var brands []string
	for _, d := range c.devices {
		b := strings.ToLower(d.Brand)
		if !slices.Contains(brands, b) {
			brands = append(brands, b)
		}
	}
	slices.Sort(brands)
	return brands
}
