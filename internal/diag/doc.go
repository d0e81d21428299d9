// Package diag carries lexer and parser diagnostics for assertion sources.
// Diagnostics are collected into a bounded Bag through the Reporter seam so
// the scanning phases never depend on output formatting.
package diag
