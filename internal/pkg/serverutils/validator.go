package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// InputError marks a request rejected before any processing happened.
// The error handler maps it to a 400 with the message as-is.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func NewInputError(message string) *InputError {
	return &InputError{Message: message}
}

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return &InputError{Message: err.Error()}
	}
	return nil
}
