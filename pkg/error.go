package gdlint

import "fmt"

// TODO: maybe just use errors.Wrap for these

type parseError struct {
	error error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.error.Error())
}

type validationError struct {
	error error
}

func (e *validationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.error.Error())
}
