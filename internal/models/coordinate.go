package models

// Coordinate is a geocoded point as returned by the geocoding service. Values are kept as the
// decimal strings the service produced so they can be passed to the router without reformatting.
type Coordinate struct {
	Lon string `json:"lon"`
	Lat string `json:"lat"`
}

// Pair returns the coordinate as [lon, lat], the order the routing API expects.
func (c Coordinate) Pair() []string { return []string{c.Lon, c.Lat} }

// String renders "lon,lat" for routing query parameters.
func (c Coordinate) String() string { return c.Lon + "," + c.Lat }
