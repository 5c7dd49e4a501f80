// Package arguments assembles the ordered argument tokens passed to git and hub.
//
// Builders are pure: they copy any caller-supplied arguments, append the tokens
// of one subcommand in a fixed order, and quote free-form values through Quote so
// that a value containing whitespace survives as a single process argument.
package arguments
