package types

// Version is the build version of tagbump. Overwritten by -ldflags at release time.
var Version = "dev"

// GitHubToken is a credential for the GitHub API. It has its own type so that
// the logger can redact it wherever it appears.
type GitHubToken string

// String returns the raw token
func (x GitHubToken) String() string {
	return string(x)
}

// DefaultLocalConfig is the file consulted when no CI credentials are present
const DefaultLocalConfig = "environment.local.conf"
