package redis

const (
	// KeyOutcomeHistory is the list of recent mutation outcomes,
	// newest first.
	KeyOutcomeHistory = "markermap:outcomes"
)

// OutcomeHistoryKey returns the key for the outcome history list.
func OutcomeHistoryKey() string {
	return KeyOutcomeHistory
}
