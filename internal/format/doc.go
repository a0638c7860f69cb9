// Package format converts raw call values into display strings.
//
// The functions here are pure and total: malformed or out-of-range input never
// panics and never returns an error. Durations below zero (or NaN) render as
// "0s"; timestamps that cannot be parsed are returned as-is so the user still
// sees something meaningful.
package format
