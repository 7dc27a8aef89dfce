package department

import "time"

type Department struct {
	ID          string
	Name        string
	Code        string
	ManagerID   *string
	Description *string
	IsActive    bool
	CreatedAt   time.Time

	// Relationships (for responses)
	ManagerName *string
}
