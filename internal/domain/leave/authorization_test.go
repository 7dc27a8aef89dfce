package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
)

func strPtr(s string) *string { return &s }

func TestCanActOn(t *testing.T) {
	engineering := "dept-eng"
	sales := "dept-sales"

	gm := employee.Employee{ID: "gm", Role: employee.RoleGeneralManager}
	engManager := employee.Employee{ID: "tm-eng", Role: employee.RoleTeamManager, DepartmentID: &engineering}
	engLeader := employee.Employee{ID: "tl-eng", Role: employee.RoleTeamLeader, DepartmentID: &engineering}
	directReport := employee.Employee{ID: "m1", Role: employee.RoleTeamMember, DepartmentID: &engineering, ManagerID: strPtr("tl-eng")}
	engPeer := employee.Employee{ID: "m2", Role: employee.RoleTeamMember, DepartmentID: &engineering, ManagerID: strPtr("tl-other")}
	salesMember := employee.Employee{ID: "m3", Role: employee.RoleTeamMember, DepartmentID: &sales}
	noDept := employee.Employee{ID: "m4", Role: employee.RoleTeamMember}

	tests := []struct {
		name    string
		actor   employee.Employee
		subject employee.Employee
		want    bool
	}{
		{"general manager acts on anyone", gm, salesMember, true},
		{"general manager acts on another manager", gm, engManager, true},
		{"team manager within department", engManager, directReport, true},
		{"team manager across departments", engManager, salesMember, false},
		{"team manager vs subject without department", engManager, noDept, false},
		{"team leader on direct report", engLeader, directReport, true},
		{"team leader on same-department non-report", engLeader, engPeer, false},
		{"team leader on subject without manager", engLeader, salesMember, false},
		{"team member acts on nobody", directReport, engPeer, false},
		{"team member cannot act on self", directReport, directReport, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanActOn(tt.actor, tt.subject))
		})
	}
}

func TestCanActOnManagerWithoutDepartment(t *testing.T) {
	manager := employee.Employee{ID: "tm", Role: employee.RoleTeamManager}
	subject := employee.Employee{ID: "m1", Role: employee.RoleTeamMember, DepartmentID: strPtr("dept-eng")}

	assert.False(t, CanActOn(manager, subject))
}
