package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/interfaces"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
)

// WebhookHandler handles GitHub webhooks
type WebhookHandler struct {
	secret    []byte
	webhookUC interfaces.WebhookUseCase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(secret string, webhookUC interfaces.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		secret:    []byte(secret),
		webhookUC: webhookUC,
	}
}

// Handle processes webhook requests
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	// Read payload
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeError(w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// Verify signature
	signature := r.Header.Get(github.SHA256SignatureHeader)
	if err := github.ValidateSignature(signature, body, h.secret); err != nil {
		logger.Warn("Invalid webhook signature", "error", err)
		writeError(w, goerr.New("invalid signature"), http.StatusUnauthorized)
		return
	}

	eventType := github.WebHookType(r)
	event := &model.WebhookEvent{
		ID:         github.DeliveryID(r),
		Type:       model.EventTypeUnknown,
		ReceivedAt: time.Now(),
	}

	switch eventType {
	case string(model.EventTypePush), string(model.EventTypePing):
		payload, err := github.ParseWebHook(eventType, body)
		if err != nil {
			logger.Error("Failed to parse webhook payload", "error", err)
			writeError(w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
			return
		}

		switch e := payload.(type) {
		case *github.PushEvent:
			event.Type = model.EventTypePush
			event.Repository = model.Repository{
				Owner: e.GetRepo().GetOwner().GetLogin(),
				Name:  e.GetRepo().GetName(),
			}
			event.Ref = e.GetRef()
			event.DefaultBranch = e.GetRepo().GetDefaultBranch()
			event.Deleted = e.GetDeleted()
			event.HeadMessage = e.GetHeadCommit().GetMessage()
			event.Sender = e.GetSender().GetLogin()
		case *github.PingEvent:
			event.Type = model.EventTypePing
		}
	}

	// Process event via UseCase
	if err := h.webhookUC.ProcessEvent(ctx, event); err != nil {
		logger.Error("Failed to process webhook event", "error", err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	// Success response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "success",
	}); err != nil {
		logger.Error("Failed to encode success response", "error", err)
	}
}
