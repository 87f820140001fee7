package models

// RouteGeometry is a GeoJSON line string passed through from the upstream
// directions provider. Coordinates stay in the provider's native
// [lng, lat] order; unlike GeocodeResult there is no axis flip here.
type RouteGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// Route is the selected driving route between two points.
// swagger:model Route
type Route struct {
	// Distance in meters
	// example: 12345.6
	Distance float64 `json:"distance"`

	// Duration in seconds
	// example: 987.6
	Duration float64 `json:"duration"`

	// Path geometry, [lng, lat] pairs
	Geometry RouteGeometry `json:"geometry"`
}
