// Package cliutil provides utilities for CLI operations: guarded writes and
// input resolution from arguments, files, or stdin.
package cliutil
