package model

// RepoRef identifies a repository by its owner and name as extracted
// from an input URL. It is immutable once created; invalid input never
// produces a RepoRef (the raw URL is classified as INVALID_URL instead).
type RepoRef struct {
	// Owner is the user or organization segment of the URL path.
	// Case is preserved as given; GitHub treats names case-insensitively
	// but repocheck does not normalize.
	Owner string

	// Name is the repository name with known suffixes (".git") stripped.
	Name string

	// OriginalURL is the raw input line the reference was parsed from.
	OriginalURL string
}

// FullName returns the "owner/name" form used in progress output and
// API request paths.
func (r RepoRef) FullName() string {
	return r.Owner + "/" + r.Name
}
