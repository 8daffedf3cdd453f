package model

import "time"

// WebhookEventType represents the type of webhook event received
type WebhookEventType string

const (
	EventTypePush    WebhookEventType = "push"
	EventTypePing    WebhookEventType = "ping"
	EventTypeUnknown WebhookEventType = "unknown"
)

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID            string           // Retrieved from X-GitHub-Delivery header
	Type          WebhookEventType // Retrieved from X-GitHub-Event header
	Repository    Repository
	Ref           string // Pushed ref, e.g. refs/heads/main
	DefaultBranch string
	Deleted       bool // Push deleted the ref
	HeadMessage   string
	Sender        string
	ReceivedAt    time.Time
}

// IsReleaseTrigger reports whether the event should start a release run:
// a non-deleting push to the repository's default branch.
func (e *WebhookEvent) IsReleaseTrigger() bool {
	if e.Type != EventTypePush || e.Deleted {
		return false
	}
	if e.DefaultBranch == "" || e.Repository.Owner == "" || e.Repository.Name == "" {
		return false
	}
	return e.Ref == "refs/heads/"+e.DefaultBranch
}
