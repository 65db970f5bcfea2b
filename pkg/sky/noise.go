package sky

import (
	"math"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// Noise is a deterministic spatial hash in [0,1]. It is not smooth: nearby
// points decorrelate once the scaled coordinates cross an integer boundary.
func Noise(p core.Vec3) float64 {
	hash := toInt32(p.X*73856093) ^ toInt32(p.Y*19349663) ^ toInt32(p.Z*83492791)
	hash = (hash ^ (hash >> 13)) * 1274126177
	hash ^= hash >> 16
	return math.Min(1, math.Abs(float64(hash)/math.MaxInt32))
}

// toInt32 truncates toward zero and saturates at the int32 range; NaN maps to 0
func toInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}
