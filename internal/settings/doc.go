// Package settings supplies the executable paths and runner options used by the
// git and hub façades. Values are decoded from the application configuration and
// read by the clients at call time.
package settings
