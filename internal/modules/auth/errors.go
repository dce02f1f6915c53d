package auth

import "strings"

// FormError carries the ordered, human-readable list of client-side
// validation failures, raised before any network call is made.
type FormError struct {
	Errors []string
}

func (e *FormError) Error() string {
	return "invalid form: " + strings.Join(e.Errors, "; ")
}
