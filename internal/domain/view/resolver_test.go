package view

import (
	"testing"
	"time"

	"nest_configurator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func configWith(values map[entities.Category]string) entities.Configuration {
	cfg := entities.NewConfiguration("s1", time.Unix(0, 0))
	for cat, v := range values {
		cfg.Selections[cat] = entities.Selection{Category: cat, Value: v, Name: v}
	}
	return cfg
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(DefaultManifest())

	cases := []struct {
		name   string
		values map[entities.Category]string
		view   View
		want   string
	}{
		{
			name:   "exact exterior",
			values: map[entities.Category]string{entities.CategoryNestSize: "nest120", entities.CategoryEnvelope: "holzlattung"},
			view:   ViewExterior,
			want:   "exterior/115_holz",
		},
		{
			name:   "empty configuration uses defaults",
			values: nil,
			view:   ViewExterior,
			want:   "exterior/75_trapezblech",
		},
		{
			name: "unrendered flooring falls back to default flooring",
			values: map[entities.Category]string{
				entities.CategoryNestSize:       "nest120",
				entities.CategoryInteriorLining: "fichte",
				entities.CategoryFlooring:       "ohne_belag",
			},
			view: ViewInterior,
			want: "interior/115_fichte_parkett",
		},
		{
			name: "unrendered size falls back to nearest size",
			values: map[entities.Category]string{
				entities.CategoryNestSize:       "nest160",
				entities.CategoryInteriorLining: "steirische_eiche",
				entities.CategoryFlooring:       "granit",
			},
			view: ViewInterior,
			want: "interior/135_eiche_granit",
		},
		{
			name:   "solar with unrendered envelope",
			values: map[entities.Category]string{entities.CategoryNestSize: "nest100", entities.CategoryEnvelope: "fassadenplatten_weiss"},
			view:   ViewSolar,
			want:   "pv/95_trapezblech",
		},
		{
			name:   "windows ignore size",
			values: map[entities.Category]string{entities.CategoryNestSize: "nest140", entities.CategoryInteriorLining: "fichte"},
			view:   ViewWindows,
			want:   "fenster/fichte",
		},
		{
			name:   "unknown material",
			values: map[entities.Category]string{entities.CategoryEnvelope: "marmor/../x"},
			view:   ViewExterior,
			want:   "exterior/75_trapezblech",
		},
		{
			name:   "unknown view",
			values: nil,
			view:   View("roof"),
			want:   "exterior/default",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Resolve(configWith(tc.values), tc.view))
		})
	}
}

func TestResolver_FallsBackToViewDefault(t *testing.T) {
	r := NewResolver(nil)
	cfg := configWith(map[entities.Category]string{entities.CategoryNestSize: "nest100"})

	for _, v := range []View{ViewExterior, ViewInterior, ViewSolar, ViewWindows} {
		assert.Equal(t, DefaultAssetID(v), r.Resolve(cfg, v))
	}
}

func TestResolver_Cache(t *testing.T) {
	r := NewResolver(DefaultManifest())
	cfg := configWith(map[entities.Category]string{entities.CategoryNestSize: "nest80"})

	first := r.Resolve(cfg, ViewExterior)
	second := r.Resolve(cfg, ViewExterior)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.CacheSize())

	cfg.Selections[entities.CategoryEnvelope] = entities.Selection{Category: entities.CategoryEnvelope, Value: "holzlattung", Name: "Holz"}
	assert.Equal(t, "exterior/75_holz", r.Resolve(cfg, ViewExterior))
	assert.Equal(t, 2, r.CacheSize())

	r.ClearCache()
	assert.Equal(t, 0, r.CacheSize())
}

func TestBucketsByDistance(t *testing.T) {
	assert.Equal(t, []string{"115", "95", "135", "75", "155"}, bucketsByDistance("nest120"))
	assert.Equal(t, []string{"155", "135", "115", "95", "75"}, bucketsByDistance("nest160"))
	assert.Equal(t, []string{"75", "95", "115", "135", "155"}, bucketsByDistance("bogus"))
}

func TestAvailableViews(t *testing.T) {
	empty := configWith(nil)
	withExtras := configWith(map[entities.Category]string{
		entities.CategorySolar:   "pv_modul",
		entities.CategoryWindows: "fenster_holz_alu",
	})

	assert.Equal(t, []View{ViewExterior}, AvailableViews(empty, false, false))
	assert.Equal(t, []View{ViewExterior, ViewInterior}, AvailableViews(empty, true, true))
	assert.Equal(t, []View{ViewExterior}, AvailableViews(withExtras, false, false))
	assert.Equal(t, []View{ViewExterior, ViewInterior, ViewSolar, ViewWindows}, AvailableViews(withExtras, true, true))
}

func TestParseView(t *testing.T) {
	v, ok := ParseView(" interior ")
	assert.True(t, ok)
	assert.Equal(t, ViewInterior, v)

	_, ok = ParseView("roof")
	assert.False(t, ok)
}
