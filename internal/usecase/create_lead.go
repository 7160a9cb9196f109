package usecase

import (
	"context"

	"github.com/xavierca1/leadscore/internal/entity"
)

type CreateLeadUseCase struct {
	Repo        entity.LeadRepositoryInterface
	Broadcaster Broadcaster
}

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface, broadcaster Broadcaster) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:        repo,
		Broadcaster: broadcaster,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs[0]
	}

	status := input.Status
	if status == "" {
		status = entity.StatusNew
	}

	lead := &entity.Lead{
		Email:   input.Email,
		Name:    input.Name,
		Company: input.Company,
		Status:  status,
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	uc.Broadcaster.Broadcast(BroadcastLeadCreated, LeadCreatedPayload{Lead: lead})

	return lead, nil
}
