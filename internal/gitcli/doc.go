// Package gitcli exposes one operation per git subcommand used by the
// application. Each operation assembles its arguments, resolves the git
// executable from settings, and returns the pending result of the launched
// process without waiting for it.
package gitcli
