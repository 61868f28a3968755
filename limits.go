package veccursor

// Page size limits used by Pager and by gormseq.Query.
const (
	// NoLimit disables the page size limit.
	NoLimit      = -1
	MaxLimit     = 100
	DefaultLimit = 10
)

// IsNormalizedLimitMax clamps limit into (0, maxLimit]. Non-positive limits
// fall back to DefaultLimit. The boolean reports whether limit was already
// within range.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return DefaultLimit, false
	} else if limit > maxLimit {
		return maxLimit, false
	}

	return limit, true
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}
