package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
)

func TestReleaseDraft_Outputs(t *testing.T) {
	draft := &model.ReleaseDraft{
		Repository: model.Repository{Owner: "hydroponics-system", Name: "hydro-microservice"},
		Current:    model.Version{Major: 1, Minor: 2, Fix: 3},
		Next:       model.Version{Major: 1, Minor: 3},
		Kind:       model.BumpMinor,
		Summary:    "add sensor driver",
		Date:       time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local),
	}

	out, err := draft.Outputs()
	gt.NoError(t, err)

	gt.String(t, out.Tag).Equal("v1.3.0")
	gt.String(t, out.Name).Equal("Release v1.3.0")
	gt.String(t, out.Body).Equal(
		"### [1.3.0](https://github.com/hydroponics-system/hydro-microservice/compare/v1.2.3...v1.3.0) (2024-03-05)\n" +
			"### **Changes**\n" +
			"* add sensor driver",
	)
	gt.Value(t, out.Repository).Equal(draft.Repository)
}

func TestReleaseOutputs_Pairs(t *testing.T) {
	out := &model.ReleaseOutputs{Tag: "v1.0.0", Name: "Release v1.0.0", Body: "body"}
	pairs := out.Pairs()

	gt.Number(t, len(pairs)).Equal(3)
	gt.Value(t, pairs[0]).Equal([2]string{model.OutputTag, "v1.0.0"})
	gt.Value(t, pairs[1]).Equal([2]string{model.OutputReleaseName, "Release v1.0.0"})
	gt.Value(t, pairs[2]).Equal([2]string{model.OutputBody, "body"})
}

func TestParseRepository(t *testing.T) {
	repo, err := model.ParseRepository("octo/hello")
	gt.NoError(t, err)
	gt.Value(t, repo).Equal(model.Repository{Owner: "octo", Name: "hello"})
	gt.String(t, repo.FullName()).Equal("octo/hello")

	for _, in := range []string{"", "octo", "octo/", "/hello", "a/b/c"} {
		t.Run(in, func(t *testing.T) {
			_, err := model.ParseRepository(in)
			gt.Error(t, err)
		})
	}
}

func TestCredentials_Validate(t *testing.T) {
	valid := model.Credentials{
		Repository: model.Repository{Owner: "o", Name: "r"},
		Token:      "t",
	}
	gt.NoError(t, valid.Validate())

	noToken := valid
	noToken.Token = ""
	gt.Error(t, noToken.Validate())

	noOwner := valid
	noOwner.Repository.Owner = ""
	gt.Error(t, noOwner.Validate())

	noName := valid
	noName.Repository.Name = ""
	gt.Error(t, noName.Validate())
}
