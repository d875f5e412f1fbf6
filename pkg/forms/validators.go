package forms

import "slices"

// Validator returns an error message for an invalid value, or "".
type Validator[T comparable] func(T) string

// Required rejects the zero value.
func Required[T comparable](message string) Validator[T] {
	return func(v T) string {
		var zero T
		if v == zero {
			return message
		}
		return ""
	}
}

// OneOf rejects values outside allowed.
func OneOf[T comparable](message string, allowed ...T) Validator[T] {
	return func(v T) string {
		if !slices.Contains(allowed, v) {
			return message
		}
		return ""
	}
}
