package leave

import "github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"

// CanActOn decides whether actor may approve, reject or otherwise act on
// requests belonging to subject. Pure function over the two records:
//
//   - general managers act on anyone
//   - team managers act within their own department
//   - team leaders act on their direct reports
//   - team members act on nobody
func CanActOn(actor, subject employee.Employee) bool {
	switch actor.Role {
	case employee.RoleGeneralManager:
		return true
	case employee.RoleTeamManager:
		return actor.DepartmentID != nil && subject.DepartmentID != nil &&
			*actor.DepartmentID == *subject.DepartmentID
	case employee.RoleTeamLeader:
		return subject.ManagerID != nil && *subject.ManagerID == actor.ID
	default:
		return false
	}
}
