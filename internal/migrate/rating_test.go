package migrate

import (
	"testing"

	"github.com/damigrowth/migrator/internal/data/repos/source"
)

func TestReduceRating_BucketsWin(t *testing.T) {
	buckets := source.StarBuckets{5, 10, 15, 20, 50}
	storedRating := 1.0
	storedCount := 3

	rating, count := ReduceRating(buckets, &storedRating, &storedCount, RoundHalfUp)
	if rating != 4.00 {
		t.Fatalf("rating = %v, want 4.00", rating)
	}
	if count != 100 {
		t.Fatalf("count = %d, want 100", count)
	}
}

func TestReduceRating_StoredFallback(t *testing.T) {
	storedRating := 4.5
	storedCount := 12

	rating, count := ReduceRating(source.StarBuckets{}, &storedRating, &storedCount, RoundHalfUp)
	if rating != 4.5 || count != 12 {
		t.Fatalf("got (%v, %d), want (4.5, 12)", rating, count)
	}

	// Partial aggregates carry over what exists.
	rating, count = ReduceRating(source.StarBuckets{}, &storedRating, nil, RoundHalfUp)
	if rating != 4.5 || count != 0 {
		t.Fatalf("got (%v, %d), want (4.5, 0)", rating, count)
	}
}

func TestReduceRating_NoData(t *testing.T) {
	rating, count := ReduceRating(source.StarBuckets{}, nil, nil, RoundHalfUp)
	if rating != 0 || count != 0 {
		t.Fatalf("got (%v, %d), want (0, 0)", rating, count)
	}
}

func TestReduceRating_TieBreaking(t *testing.T) {
	// sum 29 over 8 reviews = 3.625 exactly, a tie at two decimals.
	buckets := source.StarBuckets{0, 1, 2, 4, 1}

	up, _ := ReduceRating(buckets, nil, nil, RoundHalfUp)
	if up != 3.63 {
		t.Fatalf("half-up rating = %v, want 3.63", up)
	}
	even, _ := ReduceRating(buckets, nil, nil, RoundHalfEven)
	if even != 3.62 {
		t.Fatalf("half-even rating = %v, want 3.62", even)
	}
}

func TestParseRoundingMode(t *testing.T) {
	if got := ParseRoundingMode("bankers"); got != RoundHalfEven {
		t.Fatalf("bankers parsed as %v", got)
	}
	if got := ParseRoundingMode(" Half-Even "); got != RoundHalfEven {
		t.Fatalf("half-even parsed as %v", got)
	}
	if got := ParseRoundingMode(""); got != RoundHalfUp {
		t.Fatalf("default parsed as %v", got)
	}
	if got := ParseRoundingMode("garbage"); got != RoundHalfUp {
		t.Fatalf("unknown parsed as %v", got)
	}
}
