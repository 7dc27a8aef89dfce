package policy

import "context"

// PolicyRepository - interface for the leave_policies table
type PolicyRepository interface {
	Create(ctx context.Context, p LeavePolicy) (LeavePolicy, error)
	GetByID(ctx context.Context, id string) (LeavePolicy, error)
	List(ctx context.Context) ([]LeavePolicy, error)
	Update(ctx context.Context, req UpdatePolicyRequest) error
	Delete(ctx context.Context, id string) error
}
