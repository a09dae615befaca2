// Package assets serves preview asset URLs.
package assets

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"nest_configurator/internal/usecase/interfaces"
)

var ErrUnknownAsset = errors.New("unknown asset")

// URLStore maps asset ids of a known manifest to URLs below a base URL.
type URLStore struct {
	base      *url.URL
	extension string
	known     map[string]struct{}
}

var _ interfaces.IAssetStore = (*URLStore)(nil)

// NewURLStore builds URLs as base/<asset id><extension>.
func NewURLStore(baseURL, extension string, manifest []string) (*URLStore, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse asset base url: %w", err)
	}
	known := make(map[string]struct{}, len(manifest))
	for _, id := range manifest {
		known[id] = struct{}{}
	}
	return &URLStore{base: u, extension: extension, known: known}, nil
}

func (s *URLStore) URL(_ context.Context, assetID string) (string, error) {
	if _, ok := s.known[assetID]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAsset, assetID)
	}
	u := *s.base
	u.Path = path.Join(u.Path, assetID+s.extension)
	return u.String(), nil
}
