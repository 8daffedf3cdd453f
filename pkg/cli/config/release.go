package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Release holds release resolution settings
type Release struct {
	Version string
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "release-version",
			Usage:       "Release this version instead of bumping the latest tag (e.g. v2.0.0)",
			Destination: &c.Version,
			Sources:     cli.EnvVars("TAGBUMP_VERSION", "INPUT_VERSION"),
		},
	}
}

// Override returns the forced version, or nil when none is set. Unlike tag
// parsing, an unparseable value is an error.
func (c *Release) Override() (*model.Version, error) {
	if c.Version == "" {
		return nil, nil
	}

	v, ok := model.LookupTag(c.Version)
	if !ok {
		return nil, goerr.New("invalid version override",
			goerr.V("version", c.Version),
			goerr.T(model.ErrTagConfiguration),
		)
	}
	return &v, nil
}
