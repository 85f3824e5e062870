package transit

// Stop is a station or stop location. A stop may serve several routes; two
// records describe the same stop only when their IDs match exactly.
type Stop struct {
	ID      string
	Name    string
	Address string
}
