// Package main provides the entry point for the repocheck CLI.
//
// Repocheck verifies that GitHub repository links are still alive.
// It reads a newline-delimited list of repository URLs, queries the
// GitHub API for each one, and reports which links are dead.
//
// Usage:
//
//	repocheck check urls.txt
//	repocheck check urls.txt ghp_yourtoken
//
// See --help for all available options.
package main

// main is the entry point for repocheck.
func main() {
	Execute()
}
