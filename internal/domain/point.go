package domain

// Point is a single chart coordinate. X is a fractional year, Y a price in EUR.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}
