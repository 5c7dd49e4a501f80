// Package facade builds the Cobra commands that expose each git and hub
// operation of the façade: add, branch, checkout, commit, push, rev-parse, rm,
// head, and pull-request, plus config for printing the effective settings.
package facade
