// Package location maps free-text place names to coordinates using a static
// gazetteer. Resolution never fails: unknown places degrade to a default
// anchor so a colloquial location string can never block a search.
package location

import (
	"log/slog"
	"strings"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// Entry is one gazetteer row. Name is matched case-insensitively.
type Entry struct {
	Name string
	Geo  domain.Coordinate
}

// DefaultAnchor is returned when nothing in the table matches. Tokyo
// Station, the conventional origin for Tokyo-area distance reckoning.
var DefaultAnchor = domain.Coordinate{Latitude: 35.681236, Longitude: 139.767125}

// builtinEntries is the baked-in table. Order matters: substring fallback
// takes the first matching row, not the best one.
var builtinEntries = []Entry{
	{"tokyo", domain.Coordinate{Latitude: 35.681236, Longitude: 139.767125}},
	{"shibuya", domain.Coordinate{Latitude: 35.658034, Longitude: 139.701636}},
	{"shinjuku", domain.Coordinate{Latitude: 35.690921, Longitude: 139.700258}},
	{"ginza", domain.Coordinate{Latitude: 35.671989, Longitude: 139.763965}},
	{"roppongi", domain.Coordinate{Latitude: 35.662836, Longitude: 139.731443}},
	{"ebisu", domain.Coordinate{Latitude: 35.646685, Longitude: 139.710109}},
	{"asakusa", domain.Coordinate{Latitude: 35.711654, Longitude: 139.796655}},
	{"ikebukuro", domain.Coordinate{Latitude: 35.728926, Longitude: 139.710380}},
	{"akihabara", domain.Coordinate{Latitude: 35.698353, Longitude: 139.773114}},
	{"meguro", domain.Coordinate{Latitude: 35.633998, Longitude: 139.715828}},
	{"nakameguro", domain.Coordinate{Latitude: 35.644155, Longitude: 139.698820}},
	{"daikanyama", domain.Coordinate{Latitude: 35.648274, Longitude: 139.703420}},
	{"omotesando", domain.Coordinate{Latitude: 35.665498, Longitude: 139.712257}},
	{"harajuku", domain.Coordinate{Latitude: 35.670168, Longitude: 139.701636}},
	{"yokohama", domain.Coordinate{Latitude: 35.443707, Longitude: 139.638031}},
	{"osaka", domain.Coordinate{Latitude: 34.693738, Longitude: 135.502165}},
	{"namba", domain.Coordinate{Latitude: 34.666317, Longitude: 135.500700}},
	{"umeda", domain.Coordinate{Latitude: 34.705141, Longitude: 135.498304}},
	{"kyoto", domain.Coordinate{Latitude: 35.011636, Longitude: 135.768029}},
	{"gion", domain.Coordinate{Latitude: 35.003685, Longitude: 135.775248}},
	{"kobe", domain.Coordinate{Latitude: 34.690083, Longitude: 135.195510}},
	{"nagoya", domain.Coordinate{Latitude: 35.181446, Longitude: 136.906398}},
	{"sapporo", domain.Coordinate{Latitude: 43.061936, Longitude: 141.354292}},
	{"fukuoka", domain.Coordinate{Latitude: 33.590355, Longitude: 130.401716}},
	{"hakata", domain.Coordinate{Latitude: 33.589886, Longitude: 130.420574}},
	{"sendai", domain.Coordinate{Latitude: 38.268215, Longitude: 140.869356}},
	{"hiroshima", domain.Coordinate{Latitude: 34.385203, Longitude: 132.455293}},
	{"naha", domain.Coordinate{Latitude: 26.212401, Longitude: 127.679274}},
	{"okinawa", domain.Coordinate{Latitude: 26.334359, Longitude: 127.805753}},
	{"kanazawa", domain.Coordinate{Latitude: 36.561325, Longitude: 136.656205}},
	{"kamakura", domain.Coordinate{Latitude: 35.319225, Longitude: 139.546687}},
	{"hakone", domain.Coordinate{Latitude: 35.232355, Longitude: 139.106974}},
}

// Table is an immutable name-to-coordinate lookup, constructed once at
// startup and shared read-only by every request.
type Table struct {
	entries []Entry
	exact   map[string]domain.Coordinate
	anchor  domain.Coordinate
}

// NewTable builds a table from the builtin gazetteer plus optional overlay
// entries from configuration. Overlay rows are normalized and appended
// after the builtin rows, so builtin names win substring fallback ties.
// A zero-valued anchor falls back to DefaultAnchor.
func NewTable(overlay []Entry, anchor *domain.Coordinate) *Table {
	t := &Table{
		entries: make([]Entry, 0, len(builtinEntries)+len(overlay)),
		exact:   make(map[string]domain.Coordinate, len(builtinEntries)+len(overlay)),
		anchor:  DefaultAnchor,
	}
	if anchor != nil {
		t.anchor = *anchor
	}
	for _, e := range builtinEntries {
		t.add(e)
	}
	for _, e := range overlay {
		t.add(e)
	}
	return t
}

func (t *Table) add(e Entry) {
	name := normalize(e.Name)
	if name == "" {
		return
	}
	if _, dup := t.exact[name]; dup {
		return
	}
	t.entries = append(t.entries, Entry{Name: name, Geo: e.Geo})
	t.exact[name] = e.Geo
}

// Len returns the number of rows in the table.
func (t *Table) Len() int { return len(t.entries) }

// Anchor returns the fallback coordinate.
func (t *Table) Anchor() domain.Coordinate { return t.anchor }

// Resolver resolves place names against a Table.
type Resolver struct {
	table  *Table
	logger *slog.Logger
}

// NewResolver creates a Resolver over the given table.
func NewResolver(table *Table, logger *slog.Logger) *Resolver {
	return &Resolver{
		table:  table,
		logger: logger.With("component", "location_resolver"),
	}
}

// Resolve maps a free-text place name to a coordinate. Exact key match
// first; otherwise the first table row (in declared order) whose name
// contains the input or is contained by it; otherwise the default anchor.
func (r *Resolver) Resolve(text string) domain.Coordinate {
	name := normalize(text)
	if geo, ok := r.table.exact[name]; ok {
		return geo
	}
	if name != "" {
		for _, e := range r.table.entries {
			if strings.Contains(name, e.Name) || strings.Contains(e.Name, name) {
				r.logger.Debug("Resolved place by substring match",
					slog.String("input", text), slog.String("matched", e.Name))
				return e.Geo
			}
		}
	}
	r.logger.Debug("Place not in gazetteer, using default anchor", slog.String("input", text))
	return r.table.anchor
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
