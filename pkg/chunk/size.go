package chunk

const (
	// MinSize is the smallest chunk capacity we hand out.
	MinSize = 4 * 1024
	// MaxSize is the largest chunk capacity we hand out.
	MaxSize = 16 * 1024 * 1024
	// DefaultSize is used when no chunk size is requested.
	DefaultSize = 64 * 1024
)

// ClampSize returns the chunk size clamped between MinSize and MaxSize.  If
// n is zero or negative we use DefaultSize.
func ClampSize(n int) int {
	if n <= 0 {
		return DefaultSize
	}
	return min(max(n, MinSize), MaxSize)
}
