package usecase

import (
	"context"
	"fmt"

	"github.com/nazorathub/nazorat-hub/internal/entity"
)

type DistributeLeadsInput struct {
	OperatorID string `json:"operatorId"`
	Count      int    `json:"count"`
}

type DistributeLeadsOutput struct {
	Assigned int `json:"assigned"`
}

// DistributeLeadsUseCase assigns a batch of general-pool leads to one
// operator: first-in-first-assigned, no randomization.
//
// The check against the pool size is all-or-nothing, but persistence is one
// write per lead in program order. A crash mid-loop leaves a partial
// assignment; that is accepted because re-running with an adjusted count is
// safe (assignment is a set, ids already assigned drop out of the pool).
type DistributeLeadsUseCase struct {
	Leads LeadRepositoryInterface
	Users UserRepositoryInterface
}

func NewDistributeLeadsUseCase(leads LeadRepositoryInterface, users UserRepositoryInterface) *DistributeLeadsUseCase {
	return &DistributeLeadsUseCase{Leads: leads, Users: users}
}

func (uc *DistributeLeadsUseCase) Execute(ctx context.Context, input DistributeLeadsInput) (*DistributeLeadsOutput, error) {
	// Zero or negative request assigns nothing and is not an error.
	if input.Count <= 0 {
		return &DistributeLeadsOutput{Assigned: 0}, nil
	}

	operator, err := uc.Users.FindByID(ctx, input.OperatorID)
	if err != nil {
		return nil, &DomainError{
			Code:    "OPERATOR_NOT_FOUND",
			Message: "operator does not exist: " + input.OperatorID,
		}
	}
	if operator.Role != entity.RoleOperator {
		return nil, &DomainError{
			Code:    "NOT_AN_OPERATOR",
			Message: fmt.Sprintf("user %s has role %s, leads can only be assigned to operators", operator.ID, operator.Role),
		}
	}

	pool, err := uc.Leads.UnassignedPool(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "POOL_READ_FAILED",
			Message: "failed to read unassigned pool: " + err.Error(),
		}
	}

	if len(pool) < input.Count {
		return nil, &InsufficientPoolError{Available: len(pool)}
	}

	assigned := 0
	for _, lead := range pool[:input.Count] {
		lead.AssignedTo = input.OperatorID
		if err := uc.Leads.Update(ctx, lead); err != nil {
			return nil, &TechnicalError{
				Code:    "DISTRIBUTION_INCOMPLETE",
				Message: fmt.Sprintf("assigned %d of %d leads before a write failed: %v", assigned, input.Count, err),
			}
		}
		assigned++
	}

	return &DistributeLeadsOutput{Assigned: assigned}, nil
}
