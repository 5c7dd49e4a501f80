// Package ui renders command lifecycle events as concise console messages.
//
// Structured diagnostics keep flowing through the executor's zap logger; the
// console logger here only receives the human-readable sentences.
package ui
