// Package github implements the GitHub-facing half of repocheck:
// parsing repository URLs into owner/name references and probing the
// repository-metadata endpoint to classify reachability.
package github
