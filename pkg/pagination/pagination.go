package pagination

const (
	// DefaultLimit matches the recent-transactions default of the movement
	// history views.
	DefaultLimit = 50
	// MaxLimit caps how many rows any listing can request.
	MaxLimit = 500
)

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
