package engine

// DefaultThreshold is the document count above which generation requires
// explicit confirmation.
const DefaultThreshold = 1000

// Decision is the size guard's verdict for a game.
type Decision int

const (
	// Proceed means the estimated document count is within the threshold.
	Proceed Decision = iota
	// ConfirmRequired means the count exceeds the threshold and the caller
	// must obtain explicit confirmation before generating.
	ConfirmRequired
)

// CheckSize gates generation on the estimated total document count,
// computed from resolved-set sizes before any document is built. A
// threshold of zero or less selects DefaultThreshold. The guard is
// advisory back-pressure only; it never truncates output.
func CheckSize(total, threshold int) Decision {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if total > threshold {
		return ConfirmRequired
	}
	return Proceed
}
