package classify

import "github.com/jonwraymond/fallible/fault"

// Fatal classifies everything as a defect. It belongs at the
// fatal-signal boundary only: anything that reaches that boundary was,
// by definition, not caught by an operational boundary, so it cannot
// be an operational failure.
type Fatal struct{}

func (Fatal) Classify(operation string, err error) Draft {
	return Draft{
		ID:      IDDefect,
		Message: err.Error(),
		Class:   fault.ClassDefect,
	}
}
