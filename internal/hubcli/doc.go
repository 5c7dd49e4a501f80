// Package hubcli wraps the hub command-line tool for pull request creation.
//
// It shares the argument quoting and asynchronous execution model of gitcli;
// the hub executable path comes from settings at call time.
package hubcli
