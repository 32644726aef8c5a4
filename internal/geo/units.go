package geo

import "fmt"

// FormatDistance renders meters with a unit picked by magnitude.
func FormatDistance(meters float64) string {
	switch {
	case meters < 1000:
		return fmt.Sprintf("%.2f meters", meters)
	case meters < 1000000:
		return fmt.Sprintf("%.2f km", meters/1000)
	default:
		return fmt.Sprintf("%.2f thousand km", meters/1000000)
	}
}

// FormatArea renders square meters as sq meters, hectares or sq km.
func FormatArea(squareMeters float64) string {
	switch {
	case squareMeters < 10000:
		return fmt.Sprintf("%.2f sq meters", squareMeters)
	case squareMeters < 1000000:
		return fmt.Sprintf("%.2f hectares", squareMeters/10000)
	default:
		return fmt.Sprintf("%.2f sq km", squareMeters/1000000)
	}
}
