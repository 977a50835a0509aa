package cuid2

import "fmt"

// InvalidLengthError reports a requested identifier length outside the
// supported range
type InvalidLengthError struct {
	Length int
	Min    int
	Max    int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid cuid length: %d, expected between %d and %d", e.Length, e.Min, e.Max)
}

// ClockError reports a system clock reading from before the Unix epoch
type ClockError struct {
	Millis int64
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("system clock before unix epoch: %dms", e.Millis)
}

// RandomSourceError reports a failure to read from the operating system
// entropy source
type RandomSourceError struct {
	Err error
}

func (e *RandomSourceError) Error() string {
	return "random source unavailable: " + e.Err.Error()
}

func (e *RandomSourceError) Unwrap() error { return e.Err }
