package ical

import (
	"fmt"
	"sort"
	"strings"
)

type CustomError struct {
	msg  string
	args map[string]any
}

// Create a new custom error
func NewCustomError(msg string, args map[string]any) *CustomError {
	if args == nil {
		args = make(map[string]any)
	}
	return &CustomError{
		msg:  msg,
		args: args,
	}
}

// Get the error message; args are appended in key order so the output is
// deterministic.
func (e CustomError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.msg)
	sb.WriteString(" |")

	keys := make([]string, 0, len(e.args))
	for key := range e.args {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf(" %s: %v", key, e.args[key]))
	}
	return sb.String()
}
