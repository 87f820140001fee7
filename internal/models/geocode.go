package models

// GeocodeResult is one normalized geocoding match.
//
// The upstream provider reports coordinates as a [lng, lat] pair; results
// are flattened into separate lat/lng fields here. Order matters: getting
// the flip backwards inverts every pin on the map.
// swagger:model GeocodeResult
type GeocodeResult struct {
	// Upstream feature ID
	// example: address.123456
	ID string `json:"id"`

	// Full place name
	// example: 123 Main St, Seattle, Washington 98104, United States
	Address string `json:"address"`

	// Latitude in degrees
	// example: 47.6038
	Lat float64 `json:"lat"`

	// Longitude in degrees
	// example: -122.3301
	Lng float64 `json:"lng"`
}
