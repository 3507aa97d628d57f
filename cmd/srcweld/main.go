// Package main provides the entry point for the srcweld CLI.
//
// srcweld combines the source files of one or more projects into a single
// output file, suitable for submission to tools that accept only one file.
// Import directives are hoisted to the top and deduplicated, and the output
// can optionally be minified by stripping comments and line breaks.
//
// Usage:
//
//	srcweld combine <project-list> <output>
//	srcweld combine --minify <project-list> <output>
//
// See --help for all available options.
package main

// main is the entry point for srcweld.
func main() {
	Execute()
}
