package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("zero limit should normalize to default, got %d", got)
	}
	if got := NormalizeLimit(-10); got != DefaultLimit {
		t.Fatalf("negative limit should normalize to default, got %d", got)
	}
	if got := NormalizeLimit(25); got != 25 {
		t.Fatalf("in-range limit should pass through, got %d", got)
	}
	if got := NormalizeLimit(10_000); got != MaxLimit {
		t.Fatalf("oversized limit should clamp to max, got %d", got)
	}
}
