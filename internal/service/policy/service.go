package policy

import (
	"context"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/policy"
)

// Service manages leave policy records. Policies are configuration data;
// the request lifecycle does not consult them.
type Service struct {
	policies policy.PolicyRepository
}

func NewService(policies policy.PolicyRepository) *Service {
	return &Service{policies: policies}
}

func (s *Service) Create(ctx context.Context, req policy.CreatePolicyRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	created, err := s.policies.Create(ctx, policy.LeavePolicy{
		Name:                req.Name,
		LeaveType:           leave.LeaveType(req.LeaveType),
		AnnualQuota:         req.AnnualQuota,
		MaxConsecutiveDays:  req.MaxConsecutiveDays,
		CarryForwardAllowed: req.CarryForwardAllowed,
		CarryForwardMaxDays: req.CarryForwardMaxDays,
		RequiresApproval:    requiresApproval,
		MinimumNoticeDays:   req.MinimumNoticeDays,
		Description:         req.Description,
	})
	if err != nil {
		return policy.PolicyResponse{}, err
	}
	return policy.ToResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (policy.PolicyResponse, error) {
	p, err := s.policies.GetByID(ctx, id)
	if err != nil {
		return policy.PolicyResponse{}, err
	}
	return policy.ToResponse(p), nil
}

func (s *Service) List(ctx context.Context) ([]policy.PolicyResponse, error) {
	policies, err := s.policies.List(ctx)
	if err != nil {
		return nil, err
	}
	return policy.ToResponses(policies), nil
}

func (s *Service) Update(ctx context.Context, req policy.UpdatePolicyRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	if err := s.policies.Update(ctx, req); err != nil {
		return policy.PolicyResponse{}, err
	}
	return s.Get(ctx, req.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.policies.Delete(ctx, id)
}
