package intern

// Status reports the outcome of a table operation.
type Status uint8

const (
	// StatusFound means the operation located or successfully placed an entry.
	StatusFound Status = iota
	// StatusNotFound means a lookup-style operation missed.
	StatusNotFound
	// StatusFailed means an invalid argument or an internal failure.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "FOUND"
	case StatusNotFound:
		return "NOT FOUND"
	case StatusFailed:
		return "FAILED"
	default:
		return "FAILED"
	}
}

// ParseStatus maps a status string (as produced by Status.String) back to
// its Status. Unknown strings map to StatusFailed.
func ParseStatus(s string) Status {
	switch s {
	case "FOUND":
		return StatusFound
	case "NOT FOUND":
		return StatusNotFound
	default:
		return StatusFailed
	}
}

// Key selects which index an operation runs over.
type Key uint8

const (
	// KeyText selects the index ordered lexicographically by text.
	KeyText Key = iota
	// KeyID selects the index ordered numerically by identifier.
	KeyID
)

func (k Key) String() string {
	switch k {
	case KeyText:
		return "TEXT"
	case KeyID:
		return "ID"
	default:
		return "UNKNOWN"
	}
}
