package filter

// InvalidRangeError indicates a criteria range with min greater than max.
type InvalidRangeError struct {
	Message string
}

func (e *InvalidRangeError) Error() string {
	return e.Message
}

func NewInvalidRangeError(message string) *InvalidRangeError {
	return &InvalidRangeError{Message: message}
}

// UnknownPresetError indicates a preset name outside the fixed enumeration.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return "unknown filter preset: " + e.Name
}
