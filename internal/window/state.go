package window

// State is the lifecycle state of the visualization window.
type State int

const (
	StateClosed State = iota
	// StateOpening means a surface exists but its page has not loaded yet.
	StateOpening
	// StateReady means names have been injected.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}
