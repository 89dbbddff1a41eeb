// Package apperrors defines the exit codes of the algcalc command and the
// mapping from library errors to those codes.
package apperrors
