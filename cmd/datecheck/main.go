// Package main provides the entry point for the datecheck CLI.
//
// datecheck scans a tree of Markdown documents for "as of <Month> <Year>"
// annotations and prints a checklist of the ones that have gone stale.
//
// Usage:
//
//	datecheck <root-dir>
//	datecheck --month 2021-07 --format json docs/
//
// See --help for all available options.
package main

// main is the entry point for datecheck.
func main() {
	Execute()
}
