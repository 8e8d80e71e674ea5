package dsl

import "fmt"

// InvalidQuery is the one user-facing error kind, carrying the original
// input and a diagnostic. It takes one of two message forms depending on
// whether the parser ever got past the first token, per §7.
type InvalidQuery struct {
	Input  string
	Detail string
	format bool
}

func (e InvalidQuery) Error() string {
	if e.format {
		return fmt.Sprintf("Invalid query format. Query must start with a field name or keyword. Got: %s", e.Input)
	}
	return fmt.Sprintf("Invalid query string: %s. %s", e.Input, e.Detail)
}
