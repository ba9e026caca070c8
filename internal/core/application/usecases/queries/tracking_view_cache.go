package queries

import "context"

// TrackingViewCache is an optional read-through cache for tracking views.
// Entries expire by TTL only; writers never invalidate, so a cached view may
// lag the store by up to the configured TTL.
type TrackingViewCache interface {
	// Get returns the cached view for the key, or nil on a miss.
	Get(ctx context.Context, key string) (*GetTrackingQueryResponse, error)

	// Set stores the view under the key with the cache's TTL.
	Set(ctx context.Context, key string, view *GetTrackingQueryResponse) error
}
