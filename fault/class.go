package fault

// Class partitions failures by how callers should react to them.
type Class int

const (
	// ClassUnknown is the zero value; classifiers never emit it.
	ClassUnknown Class = iota

	// ClassTransient marks failures where a retry may succeed.
	ClassTransient

	// ClassPermanent marks failures where retrying will not help.
	ClassPermanent

	// ClassDefect marks programmer or configuration errors. Defects are
	// never retried and never travel as Outcome values; they unwind to
	// the fatal-signal handler.
	ClassDefect
)

func (c Class) String() string {
	switch c {
	case ClassTransient:
		return "transient"
	case ClassPermanent:
		return "permanent"
	case ClassDefect:
		return "defect"
	default:
		return "unknown"
	}
}

// Retryable reports whether the class permits another attempt.
// The class alone determines retry eligibility.
func (c Class) Retryable() bool {
	return c == ClassTransient
}
