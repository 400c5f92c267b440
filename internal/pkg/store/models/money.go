package models

import "math"

func RoundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
