package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
	slackinfra "github.com/m-mizutani/tagbump/pkg/infra/slack"
)

var testOutputs = &model.ReleaseOutputs{
	Repository: model.Repository{Owner: "o", Name: "r"},
	Tag:        "v1.3.0",
	Name:       "Release v1.3.0",
	Body:       "### **Changes**\n* add sensor driver",
}

func TestNotifier_Emit(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := slackinfra.NewNotifier(server.URL, "#releases")
	gt.NoError(t, notifier.Emit(context.Background(), testOutputs))

	gt.Value(t, received["channel"]).Equal(any("#releases"))
	text, ok := received["text"].(string)
	gt.True(t, ok)
	gt.String(t, text).Contains("Release v1.3.0")
	gt.String(t, text).Contains("o/r")
	gt.String(t, text).Contains("* add sensor driver")
}

func TestNotifier_Emit_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	err := slackinfra.NewNotifier(server.URL, "").Emit(context.Background(), testOutputs)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to post release to Slack")
}
