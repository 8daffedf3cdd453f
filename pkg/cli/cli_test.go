package cli_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tagbump/pkg/cli"
)

func newGitHubServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/hello/tags", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "v1.2.3", "commit": {"sha": "aaa111"}}]`))
	})
	mux.HandleFunc("GET /repos/octo/hello/commits", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"sha": "ccc333", "commit": {"message": "<minor>: add sensor driver"}}]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func setupCIEnv(t *testing.T) string {
	t.Helper()
	server := newGitHubServer(t)
	outputPath := filepath.Join(t.TempDir(), "github_output")

	t.Setenv("TAGBUMP_GITHUB_TOKEN", "test-token")
	t.Setenv("TAGBUMP_REPOSITORY", "octo/hello")
	t.Setenv("TAGBUMP_GITHUB_API_URL", server.URL)
	t.Setenv("GITHUB_OUTPUT", outputPath)
	t.Setenv("GITHUB_STEP_SUMMARY", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("TAGBUMP_VERSION", "")
	t.Setenv("INPUT_VERSION", "")
	t.Setenv("TAGBUMP_SLACK_WEBHOOK_URL", "")
	t.Setenv("TAGBUMP_SENTRY_DSN", "")
	return outputPath
}

func TestRun_WritesOutputs(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "bare invocation", args: []string{"tagbump"}},
		{name: "run subcommand", args: []string{"tagbump", "run"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outputPath := setupCIEnv(t)

			gt.NoError(t, cli.Run(context.Background(), tc.args))

			data, err := os.ReadFile(outputPath)
			gt.NoError(t, err)
			gt.String(t, string(data)).Contains("\nv1.3.0\n")
			gt.String(t, string(data)).Contains("\nRelease v1.3.0\n")
			gt.String(t, string(data)).Contains("* add sensor driver")
		})
	}
}

func TestRun_MissingCredentials(t *testing.T) {
	outputPath := setupCIEnv(t)
	t.Setenv("TAGBUMP_GITHUB_TOKEN", "")
	t.Setenv("INPUT_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("TAGBUMP_LOCAL_CONFIG", filepath.Join(t.TempDir(), "missing.conf"))

	gt.Error(t, cli.Run(context.Background(), []string{"tagbump"}))

	_, statErr := os.Stat(outputPath)
	gt.True(t, os.IsNotExist(statErr))
}
