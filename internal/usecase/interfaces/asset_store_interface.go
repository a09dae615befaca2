package interfaces

import "context"

// IAssetStore serves preview assets resolved by the view resolver.
type IAssetStore interface {
	URL(ctx context.Context, assetID string) (string, error)
}
