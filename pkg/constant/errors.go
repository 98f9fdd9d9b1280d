package constant

import (
	"fmt"
	"strings"
)

// DuplicateNameError is returned when a definition collides with a key
// already present in the registry. Names and symbols share one lookup
// namespace, so a collision on either rejects the definition.
type DuplicateNameError struct {
	Key  string
	Kind string // "name" or "symbol"
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("constant %s %q is already defined", e.Kind, e.Key)
}

// ConsistencyError is returned when a definition fails its
// definition-time self checks: a fixed value that disagrees with its
// exact generator, a negative uncertainty, or a non-finite magnitude.
// It indicates a defect in the constant table, not a runtime
// condition; registration is aborted.
type ConsistencyError struct {
	Name   string
	Check  string
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("constant %q failed consistency check %s: %s", e.Name, e.Check, e.Detail)
}

// UnknownConstantError is returned when a lookup key matches no
// registered name or symbol.
type UnknownConstantError struct {
	Key       string
	Available []string
}

func (e *UnknownConstantError) Error() string {
	return fmt.Sprintf("unknown constant %q\nAvailable constants: %s", e.Key, strings.Join(e.Available, ", "))
}

// UnknownFieldError is returned by Constant.Field for an attribute
// name outside the fixed accessor set.
type UnknownFieldError struct {
	Constant  string
	Field     string
	Available []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("constant %q has no field %q\nAvailable fields: %s", e.Constant, e.Field, strings.Join(e.Available, ", "))
}
