package usecase

import (
	"context"

	"github.com/xavierca1/leadscore/internal/entity"
)

type DeleteLeadUseCase struct {
	Repo        entity.LeadRepositoryInterface
	Broadcaster Broadcaster
}

func NewDeleteLeadUseCase(repo entity.LeadRepositoryInterface, broadcaster Broadcaster) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{
		Repo:        repo,
		Broadcaster: broadcaster,
	}
}

// Execute removes the lead and everything hanging off it, then tells
// connected clients to evict it from their view.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id int) error {
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.Broadcaster.Broadcast(BroadcastLeadDeleted, LeadDeletedPayload{LeadID: id})

	return nil
}
