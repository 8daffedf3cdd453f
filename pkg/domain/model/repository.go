package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/types"
)

// Repository identifies a GitHub repository
type Repository struct {
	Owner string
	Name  string
}

// FullName returns "owner/name"
func (x Repository) FullName() string {
	return x.Owner + "/" + x.Name
}

// ParseRepository splits "owner/name" as found in GITHUB_REPOSITORY
func ParseRepository(fullName string) (Repository, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repository{}, goerr.New("invalid repository name, expected owner/name",
			goerr.V("repository", fullName),
			goerr.T(ErrTagConfiguration),
		)
	}
	return Repository{Owner: owner, Name: name}, nil
}

// Credentials is everything needed to read a repository. Resolved once at
// startup.
type Credentials struct {
	Repository Repository
	Token      types.GitHubToken
}

// Validate checks that all fields are set
func (x *Credentials) Validate() error {
	if x.Repository.Owner == "" {
		return goerr.New("repository owner is empty", goerr.T(ErrTagConfiguration))
	}
	if x.Repository.Name == "" {
		return goerr.New("repository name is empty", goerr.T(ErrTagConfiguration))
	}
	if x.Token == "" {
		return goerr.New("GitHub token is empty", goerr.T(ErrTagConfiguration))
	}
	return nil
}

// Tag is a git tag, newest first when returned in a list
type Tag struct {
	Name string
	SHA  string
}

// Commit is a commit on the default branch, newest first when returned in a list
type Commit struct {
	SHA     string
	Message string
}
