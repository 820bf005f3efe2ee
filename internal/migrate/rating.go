package migrate

import (
	"math"
	"strings"

	"github.com/damigrowth/migrator/internal/data/repos/source"
)

// RoundingMode picks the tie-breaking rule for the two-decimal weighted
// rating. The legacy system never documented its rule, so it stays
// configurable instead of hard-coded.
type RoundingMode int

const (
	RoundHalfUp RoundingMode = iota
	RoundHalfEven
)

func ParseRoundingMode(s string) RoundingMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "half-even", "halfeven", "bankers":
		return RoundHalfEven
	default:
		return RoundHalfUp
	}
}

func round2(x float64, mode RoundingMode) float64 {
	scaled := x * 100
	switch mode {
	case RoundHalfEven:
		return math.RoundToEven(scaled) / 100
	default:
		return math.Floor(scaled+0.5) / 100
	}
}

// ReduceRating computes the weighted average rating and review count from
// star buckets. Buckets win whenever their total is nonzero; otherwise the
// stored aggregate is carried over unchanged; otherwise (0, 0).
func ReduceRating(buckets source.StarBuckets, storedRating *float64, storedCount *int, mode RoundingMode) (float64, int) {
	total := buckets.Total()
	if total > 0 {
		sum := 0
		for i, n := range buckets {
			sum += (i + 1) * n
		}
		return round2(float64(sum)/float64(total), mode), total
	}
	if storedRating != nil || storedCount != nil {
		rating := 0.0
		count := 0
		if storedRating != nil {
			rating = *storedRating
		}
		if storedCount != nil {
			count = *storedCount
		}
		return rating, count
	}
	return 0, 0
}
