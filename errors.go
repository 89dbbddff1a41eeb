package algebra

import (
	"fmt"
)

// ConfigurationError reports invalid context parameters, such as a
// non-positive modulus or a composite characteristic where a prime is
// required. It is returned by context constructors and never by element
// operations: once a context exists, its parameters are valid.
type ConfigurationError struct {
	// Param is the name of the offending parameter.
	Param string
	// Message explains why the parameter is invalid.
	Message string
}

// Error returns the error message for a ConfigurationError.
func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Message)
}

// NewConfigurationError creates a ConfigurationError for the named parameter
// with a formatted message.
func NewConfigurationError(param, format string, a ...any) error {
	return ConfigurationError{Param: param, Message: fmt.Sprintf(format, a...)}
}

// ConversionError reports that a value cannot be represented in the target
// type or context, for example a rational with a non-unit denominator coerced
// to an integer. It carries the source value and both type names for
// diagnostics.
type ConversionError struct {
	// Value is a rendering of the value that failed to convert.
	Value string
	// FromType is the name of the source type.
	FromType string
	// ToType is the name of the target type or context.
	ToType string
}

// Error returns the error message for a ConversionError.
func (e ConversionError) Error() string {
	return fmt.Sprintf("unable to convert %s of type %s to type %s", e.Value, e.FromType, e.ToType)
}

// NewConversionError creates a ConversionError describing a failed conversion
// of value from fromType to toType.
func NewConversionError(value, fromType, toType string) error {
	return ConversionError{Value: value, FromType: fromType, ToType: toType}
}

// DivisionError reports division by a value that is exactly zero, division by
// a non-invertible element, or division by a ball that provably contains
// zero.
type DivisionError struct {
	// Op is the operation that failed, e.g. "Div" or "Inv".
	Op string
	// Message explains the failure.
	Message string
}

// Error returns the error message for a DivisionError.
func (e DivisionError) Error() string {
	return fmt.Sprintf("division error in %s: %s", e.Op, e.Message)
}

// NewDivisionError creates a DivisionError for the named operation with a
// formatted message.
func NewDivisionError(op, format string, a ...any) error {
	return DivisionError{Op: op, Message: fmt.Sprintf(format, a...)}
}

// DomainError reports an argument outside the mathematical domain of a
// function, such as the logarithm of a ball touching zero or the square root
// of a ball containing negative values.
type DomainError struct {
	// Op is the function that was applied.
	Op string
	// Value is a rendering of the offending argument.
	Value string
}

// Error returns the error message for a DomainError.
func (e DomainError) Error() string {
	return fmt.Sprintf("%s: argument %s outside domain", e.Op, e.Value)
}

// NewDomainError creates a DomainError for op applied to the given argument.
func NewDomainError(op, value string) error {
	return DomainError{Op: op, Value: value}
}
