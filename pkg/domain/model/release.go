package model

import (
	"bytes"
	_ "embed"
	"text/template"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

//go:embed templates/release_body.md
var releaseBodyTemplate string

var releaseBody = template.Must(template.New("release_body").Parse(releaseBodyTemplate))

// ReleaseDraft is the computed next release. It is built once per run and
// never modified.
type ReleaseDraft struct {
	Repository Repository
	Current    Version
	Next       Version
	Kind       BumpKind // BumpOverride when Next was given explicitly
	Summary    string
	Date       time.Time

	// BaselineFallback is true when the latest tag name was not a version
	// and Current is the 0.0.0 fallback.
	BaselineFallback bool
}

// ReleaseOutputs are the three values handed to the next CI step
type ReleaseOutputs struct {
	Repository Repository
	Tag        string
	Name       string
	Body       string
}

// Output names as consumed by the workflow
const (
	OutputTag         = "tag"
	OutputReleaseName = "release_name"
	OutputBody        = "body"
)

// Outputs renders the draft into tag, release name and markdown body
func (x *ReleaseDraft) Outputs() (*ReleaseOutputs, error) {
	var buf bytes.Buffer
	if err := releaseBody.Execute(&buf, x); err != nil {
		return nil, goerr.Wrap(err, "failed to render release body",
			goerr.V("repository", x.Repository.FullName()),
			goerr.V("next", x.Next.Tag()),
		)
	}

	return &ReleaseOutputs{
		Repository: x.Repository,
		Tag:        x.Next.Tag(),
		Name:       "Release " + x.Next.Tag(),
		Body:       buf.String(),
	}, nil
}

// Pairs returns the outputs as name/value pairs in a fixed order
func (x *ReleaseOutputs) Pairs() [][2]string {
	return [][2]string{
		{OutputTag, x.Tag},
		{OutputReleaseName, x.Name},
		{OutputBody, x.Body},
	}
}
