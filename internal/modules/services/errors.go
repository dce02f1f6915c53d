package services

import "strings"

type FormError struct {
	Errors []string
}

func (e *FormError) Error() string {
	return "invalid form: " + strings.Join(e.Errors, "; ")
}
