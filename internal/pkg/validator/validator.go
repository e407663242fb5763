package validator

// Validator validates a struct and returns an error describing every
// failing field, or nil when the value is valid.
type Validator interface {
	Validate(data any) error
}
