package employee

import "time"

// Role is the organizational tier of an employee. The four values are a
// closed set ordered member < leader < manager < general manager.
type Role string

const (
	RoleTeamMember     Role = "team_member"
	RoleTeamLeader     Role = "team_leader"
	RoleTeamManager    Role = "team_manager"
	RoleGeneralManager Role = "general_manager"
)

// IsValid reports whether r is one of the four known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleTeamMember, RoleTeamLeader, RoleTeamManager, RoleGeneralManager:
		return true
	}
	return false
}

// IsManagerial reports whether r may see and act on other employees' requests.
func (r Role) IsManagerial() bool {
	switch r {
	case RoleTeamLeader, RoleTeamManager, RoleGeneralManager:
		return true
	}
	return false
}

type Employee struct {
	ID           string
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role

	// Hierarchy references. ManagerID is a parent pointer forming a tree;
	// authorization only ever looks one level up.
	DepartmentID *string
	ManagerID    *string

	JoiningDate time.Time
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	DepartmentName *string
	ManagerName    *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
