package block

import "errors"

var (
	ErrScan    = errors.New("scan error")
	ErrInvalid = errors.New("invalid block")
)

// ScanError is returned by Segment when the scanner fails or reports
// ranges that cannot be segmented.  It matches both ErrScan and the
// underlying error.
type ScanError struct {
	Err error
}

func (e *ScanError) Error() string {
	return ErrScan.Error() + ": " + e.Err.Error()
}

func (e *ScanError) Unwrap() []error {
	return []error{ErrScan, e.Err}
}
