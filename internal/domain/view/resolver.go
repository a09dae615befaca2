// Package view maps configurations to preview asset identifiers.
package view

import (
	"strings"

	"nest_configurator/internal/domain/cache"
	"nest_configurator/internal/domain/entities"
)

// View is one preview perspective.
type View string

const (
	ViewExterior View = "exterior"
	ViewInterior View = "interior"
	ViewSolar    View = "pv"
	ViewWindows  View = "fenster"
)

// ParseView validates a view name from an untrusted source.
func ParseView(raw string) (View, bool) {
	v := View(strings.TrimSpace(raw))
	_, ok := viewPatterns[v]
	return v, ok
}

// part maps one category to the fragment it contributes to an asset id.
type part struct {
	category entities.Category
	suffixes map[string]string
	fallback string
}

func (p part) suffix(id string) string {
	if s, ok := p.suffixes[id]; ok {
		return s
	}
	return cache.Sanitize(id)
}

// pattern describes how one view composes its asset ids.
type pattern struct {
	sized bool
	parts []part
}

// sizeBuckets maps nest sizes to rendered image sizes, smallest first.
var sizeBuckets = []struct {
	nestSize string
	bucket   string
}{
	{"nest80", "75"},
	{"nest100", "95"},
	{"nest120", "115"},
	{"nest140", "135"},
	{"nest160", "155"},
}

const defaultNestSize = "nest80"

var (
	envelopePart = part{
		category: entities.CategoryEnvelope,
		suffixes: map[string]string{
			"trapezblech":             "trapezblech",
			"holzlattung":             "holz",
			"fassadenplatten_schwarz": "platten_schwarz",
			"fassadenplatten_weiss":   "platten_weiss",
		},
		fallback: "trapezblech",
	}
	liningPart = part{
		category: entities.CategoryInteriorLining,
		suffixes: map[string]string{
			"kiefer":           "kiefer",
			"fichte":           "fichte",
			"steirische_eiche": "eiche",
		},
		fallback: "kiefer",
	}
	flooringPart = part{
		category: entities.CategoryFlooring,
		suffixes: map[string]string{
			"parkett":               "parkett",
			"kernbeton_geschliffen": "beton",
			"granit":                "granit",
			"ohne_belag":            "ohne",
		},
		fallback: "parkett",
	}
)

var viewPatterns = map[View]pattern{
	ViewExterior: {sized: true, parts: []part{envelopePart}},
	ViewInterior: {sized: true, parts: []part{liningPart, flooringPart}},
	ViewSolar:    {sized: true, parts: []part{envelopePart}},
	ViewWindows:  {sized: false, parts: []part{liningPart}},
}

// DefaultAssetID is the last resort of every fallback chain; it is always servable.
func DefaultAssetID(v View) string {
	if _, ok := viewPatterns[v]; !ok {
		v = ViewExterior
	}
	return string(v) + "/default"
}

// Resolver resolves asset ids against a manifest of rendered assets.
type Resolver struct {
	manifest map[string]struct{}
	paths    *cache.Memo[string]
}

// NewResolver creates a resolver over the known asset ids.
func NewResolver(manifest []string) *Resolver {
	m := make(map[string]struct{}, len(manifest))
	for _, id := range manifest {
		m[id] = struct{}{}
	}
	return &Resolver{manifest: m, paths: cache.NewMemo[string]("asset_path")}
}

// Resolve returns the asset for cfg in view v. An unresolvable combination
// walks exact -> nearest known combination -> the view default, so the result
// is never empty.
func (r *Resolver) Resolve(cfg entities.Configuration, v View) string {
	key := cache.Key("path", string(v),
		cfg.Value(entities.CategoryNestSize),
		cfg.Value(entities.CategoryEnvelope),
		cfg.Value(entities.CategoryInteriorLining),
		cfg.Value(entities.CategoryFlooring),
		cfg.Value(entities.CategorySolar),
		cfg.Value(entities.CategoryWindows),
	)
	return r.paths.GetOrCompute(key, func() string {
		p, ok := viewPatterns[v]
		if !ok {
			return DefaultAssetID(ViewExterior)
		}
		for _, id := range candidates(v, p, cfg) {
			if _, known := r.manifest[id]; known {
				return id
			}
		}
		return DefaultAssetID(v)
	})
}

// ClearCache drops every memoized path.
func (r *Resolver) ClearCache() {
	r.paths.Clear()
}

// CacheSize returns the number of memoized paths.
func (r *Resolver) CacheSize() int {
	return r.paths.Len()
}

// candidates lists asset ids from most to least exact. Material fragments are
// replaced by their fallback from the last part backwards; for each material
// variant the nest size is searched outwards from the selected one.
func candidates(v View, p pattern, cfg entities.Configuration) []string {
	fragments := make([]string, len(p.parts))
	for i, pt := range p.parts {
		id := cfg.Value(pt.category)
		if id == "" {
			id = pt.fallback
		}
		fragments[i] = pt.suffix(id)
	}

	variants := [][]string{append([]string(nil), fragments...)}
	for i := len(p.parts) - 1; i >= 0; i-- {
		next := append([]string(nil), variants[len(variants)-1]...)
		fallback := p.parts[i].suffix(p.parts[i].fallback)
		if next[i] == fallback {
			continue
		}
		next[i] = fallback
		variants = append(variants, next)
	}

	buckets := []string{""}
	if p.sized {
		buckets = bucketsByDistance(cfg.Value(entities.CategoryNestSize))
	}

	out := make([]string, 0, len(variants)*len(buckets))
	for _, frags := range variants {
		for _, b := range buckets {
			out = append(out, assetID(v, b, frags))
		}
	}
	return out
}

func assetID(v View, bucket string, fragments []string) string {
	name := strings.Join(fragments, "_")
	if bucket != "" {
		name = bucket + "_" + name
	}
	return string(v) + "/" + name
}

// bucketsByDistance orders the image buckets by distance from nestSize, the
// smaller neighbour first on ties.
func bucketsByDistance(nestSize string) []string {
	idx := -1
	for i, b := range sizeBuckets {
		if b.nestSize == nestSize {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i, b := range sizeBuckets {
			if b.nestSize == defaultNestSize {
				idx = i
			}
		}
	}

	out := []string{sizeBuckets[idx].bucket}
	for d := 1; d < len(sizeBuckets); d++ {
		if idx-d >= 0 {
			out = append(out, sizeBuckets[idx-d].bucket)
		}
		if idx+d < len(sizeBuckets) {
			out = append(out, sizeBuckets[idx+d].bucket)
		}
	}
	return out
}

// AvailableViews lists the views the user can switch to. Exterior is always
// available; interior needs part 2 of the configurator; the solar and window
// details need part 3 and their category selected.
func AvailableViews(cfg entities.Configuration, part2Active, part3Active bool) []View {
	views := []View{ViewExterior}
	if part2Active {
		views = append(views, ViewInterior)
	}
	if part3Active && cfg.Has(entities.CategorySolar) {
		views = append(views, ViewSolar)
	}
	if part3Active && cfg.Has(entities.CategoryWindows) {
		views = append(views, ViewWindows)
	}
	return views
}
