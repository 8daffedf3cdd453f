package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrEmptyTagList means the repository has no tag to use as a baseline.
	// Seed one (e.g. v0.0.0) before the first run.
	ErrEmptyTagList = errors.New("repository has no tags")

	// ErrEmptyCommitList means the default branch has no commits
	ErrEmptyCommitList = errors.New("repository has no commits")
)

var (
	// ErrTagConfiguration marks errors caused by missing or invalid settings
	ErrTagConfiguration = goerr.NewTag("configuration")

	// ErrTagTransport marks failed calls to the GitHub API
	ErrTagTransport = goerr.NewTag("transport")
)
