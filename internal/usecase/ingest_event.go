package usecase

import (
	"context"
	"encoding/json"
	"log"

	"github.com/xavierca1/leadscore/internal/entity"
	"github.com/xavierca1/leadscore/internal/infra/queue"
)

// IngestEventUseCase is the event-to-score pipeline: resolve the lead, record
// the event, match an active scoring rule and apply its points, then fan the
// result out to realtime clients and optional integrations.
type IngestEventUseCase struct {
	Leads       entity.LeadRepositoryInterface
	Events      entity.EventRepositoryInterface
	Rules       entity.RuleRepositoryInterface
	History     entity.ScoreHistoryRepositoryInterface
	Broadcaster Broadcaster

	// Optional collaborators. Nil disables the feature.
	Feed         ScoreFeedPublisher
	EmailService EmailService

	// Hot-lead alert settings, only used when EmailService is set.
	AlertTo        string
	AlertThreshold int
}

func NewIngestEventUseCase(
	leads entity.LeadRepositoryInterface,
	events entity.EventRepositoryInterface,
	rules entity.RuleRepositoryInterface,
	history entity.ScoreHistoryRepositoryInterface,
	broadcaster Broadcaster,
) *IngestEventUseCase {
	return &IngestEventUseCase{
		Leads:       leads,
		Events:      events,
		Rules:       rules,
		History:     history,
		Broadcaster: broadcaster,
	}
}

func (uc *IngestEventUseCase) Execute(ctx context.Context, input IngestEventInput) (*IngestEventOutput, error) {
	if errs := ValidateIngestEventInput(input); len(errs) > 0 {
		return nil, errs[0]
	}

	lead, err := uc.resolveLead(ctx, input)
	if err != nil {
		return nil, err
	}

	// The event is recorded before the rule lookup so the event log stays
	// complete even when nothing scores.
	payload := input.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	event := &entity.Event{
		LeadID:    lead.ID,
		EventType: input.EventType,
		Payload:   payload,
	}
	if err := uc.Events.Create(ctx, event); err != nil {
		return nil, err
	}

	rule, err := uc.Rules.FindByEventType(ctx, input.EventType)
	if err != nil {
		return nil, err
	}
	if rule == nil || !rule.IsActive {
		return &IngestEventOutput{Success: true, ScoreUpdated: false}, nil
	}

	// score = score + points happens inside the database, so two events for
	// the same lead can never read a stale score.
	newScore, err := uc.Leads.IncrementScore(ctx, lead.ID, rule.Points)
	if err != nil {
		return nil, err
	}

	hist := &entity.ScoreHistory{
		LeadID:      lead.ID,
		ScoreChange: rule.Points,
		NewScore:    newScore,
		Reason:      input.EventType,
	}
	if err := uc.History.Add(ctx, hist); err != nil {
		return nil, err
	}

	uc.Broadcaster.Broadcast(BroadcastScoreUpdate, ScoreUpdatePayload{
		LeadID:      lead.ID,
		NewScore:    newScore,
		ScoreChange: rule.Points,
		Reason:      input.EventType,
	})

	if uc.Feed != nil {
		msg := queue.ScoreUpdateMessage{
			LeadID:      lead.ID,
			Email:       lead.Email,
			NewScore:    newScore,
			ScoreChange: rule.Points,
			Reason:      input.EventType,
		}
		if err := uc.Feed.PublishScoreUpdate(ctx, msg); err != nil {
			log.Printf("score feed publish failed for lead %d: %v", lead.ID, err)
		}
	}

	uc.maybeAlert(*lead, newScore, rule.Points)

	return &IngestEventOutput{Success: true, ScoreUpdated: true, NewScore: &newScore}, nil
}

// resolveLead prefers an explicit lead id over an email lookup when both are
// supplied.
func (uc *IngestEventUseCase) resolveLead(ctx context.Context, input IngestEventInput) (*entity.Lead, error) {
	if input.LeadID != 0 {
		lead, err := uc.Leads.FindByID(ctx, input.LeadID)
		if err != nil {
			return nil, err
		}
		if lead == nil {
			return nil, ValidationError{"leadId", "lead not found"}
		}
		return lead, nil
	}

	if input.Email != "" {
		lead, err := uc.Leads.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if lead == nil {
			return nil, ValidationError{"email", "lead not found for email provided"}
		}
		return lead, nil
	}

	return nil, ValidationError{"leadId", "lead id or email required"}
}

// maybeAlert emails the sales inbox the first time a lead's score crosses the
// configured threshold. Fire-and-forget: a mail failure is only logged.
func (uc *IngestEventUseCase) maybeAlert(lead entity.Lead, newScore, change int) {
	if uc.EmailService == nil || uc.AlertTo == "" {
		return
	}
	if newScore < uc.AlertThreshold || newScore-change >= uc.AlertThreshold {
		return
	}

	go func() {
		if err := uc.EmailService.SendHotLeadAlert(uc.AlertTo, lead.Name, lead.Email, newScore); err != nil {
			log.Printf("hot lead alert for %s failed: %v", lead.Email, err)
		}
	}()
}
