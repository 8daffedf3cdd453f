package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/m-mizutani/tagbump/pkg/controller/http"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
)

func TestHealthEndpoint(t *testing.T) {
	ctx := context.Background()

	server, err := controller.NewServer(
		ctx,
		&MockWebhookUseCase{},
		controller.WithAddr("localhost:0"),
		controller.WithWebhookSecret("test-secret"),
	)
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Number(t, w.Code).Equal(http.StatusOK)

	var status model.HealthStatus
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	gt.String(t, status.Status).Equal("healthy")
	gt.String(t, status.Service).Equal("tagbump")
	gt.Value(t, status.Version).NotEqual("")
	gt.True(t, status.UptimeSec >= 0)
}

func TestNewServer_RequiresSecret(t *testing.T) {
	_, err := controller.NewServer(context.Background(), &MockWebhookUseCase{})
	gt.Error(t, err)
}
