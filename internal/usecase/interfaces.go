package usecase

import (
	"context"

	"github.com/xavierca1/leadscore/internal/entity"
	"github.com/xavierca1/leadscore/internal/infra/queue"
)

// Broadcaster pushes a JSON envelope {type, payload} to every connected
// realtime client. Delivery is best-effort: no acknowledgment, no retry,
// and a failed push never affects the committed mutation.
type Broadcaster interface {
	Broadcast(kind string, payload any)
}

// Broadcast envelope kinds.
const (
	BroadcastLeadCreated = "leadCreated"
	BroadcastLeadDeleted = "leadDeleted"
	BroadcastScoreUpdate = "scoreUpdate"
)

type LeadCreatedPayload struct {
	Lead *entity.Lead `json:"lead"`
}

type LeadDeletedPayload struct {
	LeadID int `json:"leadId"`
}

type ScoreUpdatePayload struct {
	LeadID      int    `json:"leadId"`
	NewScore    int    `json:"newScore"`
	ScoreChange int    `json:"scoreChange"`
	Reason      string `json:"reason"`
}

// ScoreFeedPublisher mirrors committed score changes onto the integration
// exchange for downstream CRM consumers. Optional: wired only when AMQP is
// configured.
type ScoreFeedPublisher interface {
	PublishScoreUpdate(ctx context.Context, msg queue.ScoreUpdateMessage) error
}

// EmailService sends the hot-lead alert to the sales inbox. Optional.
type EmailService interface {
	SendHotLeadAlert(to, leadName, leadEmail string, score int) error
}
