package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
)

type visibilityFixture struct {
	svc       *VisibilityService
	lifecycle *lifecycleFixture
}

// newVisibilityFixture builds a two-department org:
//
//	engineering: tm-eng (manager), tl (leader), alice (reports to tl), bob
//	sales:       carol
//	gm sits above everyone, gm2 is a second general manager
func newVisibilityFixture(t *testing.T) *visibilityFixture {
	t.Helper()

	engineering := "dept-eng"
	sales := "dept-sales"
	employees := newFakeEmployeeRepo(
		employee.Employee{ID: "gm", Role: employee.RoleGeneralManager, IsActive: true},
		employee.Employee{ID: "gm2", Role: employee.RoleGeneralManager, IsActive: true},
		employee.Employee{ID: "tm-eng", Role: employee.RoleTeamManager, DepartmentID: &engineering, IsActive: true},
		employee.Employee{ID: "tl", Role: employee.RoleTeamLeader, DepartmentID: &engineering, IsActive: true},
		employee.Employee{ID: "alice", Role: employee.RoleTeamMember, DepartmentID: &engineering, ManagerID: strPtr("tl"), IsActive: true},
		employee.Employee{ID: "bob", Role: employee.RoleTeamMember, DepartmentID: &engineering, ManagerID: strPtr("other"), IsActive: true},
		employee.Employee{ID: "carol", Role: employee.RoleTeamMember, DepartmentID: &sales, IsActive: true},
	)

	requests := newFakeRequestRepo()
	balances := newFakeBalanceRepo()
	for _, id := range []string{"gm", "gm2", "tm-eng", "tl", "alice", "bob", "carol"} {
		require.NoError(t, balances.Init(context.Background(), id, leave.DefaultBalances()))
	}

	requestSvc := NewRequestService(fakeTransactor{}, employees, requests, balances)
	requestSvc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	return &visibilityFixture{
		svc:       NewVisibilityService(employees, requests),
		lifecycle: &lifecycleFixture{svc: requestSvc, employees: employees, requests: requests, balances: balances},
	}
}

func ids(members []employee.EmployeeResponse) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.ID)
	}
	return out
}

func TestTeamMembers(t *testing.T) {
	f := newVisibilityFixture(t)

	t.Run("team leader sees direct reports only", func(t *testing.T) {
		members, err := f.svc.TeamMembers(context.Background(), "tl")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, ids(members))
	})

	t.Run("team manager sees the department", func(t *testing.T) {
		members, err := f.svc.TeamMembers(context.Background(), "tm-eng")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"tl", "alice", "bob"}, ids(members))
	})

	t.Run("general manager sees everyone except other general managers", func(t *testing.T) {
		members, err := f.svc.TeamMembers(context.Background(), "gm")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"tm-eng", "tl", "alice", "bob", "carol"}, ids(members))
		assert.NotContains(t, ids(members), "gm2")
	})

	t.Run("team member has no scope", func(t *testing.T) {
		_, err := f.svc.TeamMembers(context.Background(), "alice")
		assert.ErrorIs(t, err, leave.ErrNotAuthorized)
	})
}

func TestListPending(t *testing.T) {
	f := newVisibilityFixture(t)

	first := f.lifecycle.create(t, "alice", "casual", "2026-03-10", "2026-03-11")
	second := f.lifecycle.create(t, "alice", "casual", "2026-03-20", "2026-03-21")
	f.lifecycle.create(t, "carol", "casual", "2026-03-10", "2026-03-11")

	t.Run("oldest application first", func(t *testing.T) {
		pending, err := f.svc.ListPending(context.Background(), "tl")
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, first.ID, pending[0].ID)
		assert.Equal(t, second.ID, pending[1].ID)
	})

	t.Run("processed requests drop out of the queue", func(t *testing.T) {
		_, err := f.lifecycle.svc.Approve(context.Background(), first.ID, "tl")
		require.NoError(t, err)

		pending, err := f.svc.ListPending(context.Background(), "tl")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, second.ID, pending[0].ID)
	})

	t.Run("actor's own requests stay out of their queue", func(t *testing.T) {
		own := f.lifecycle.create(t, "tm-eng", "casual", "2026-03-25", "2026-03-26")

		pending, err := f.svc.ListPending(context.Background(), "tm-eng")
		require.NoError(t, err)
		for _, p := range pending {
			assert.NotEqual(t, own.ID, p.ID)
		}
	})

	t.Run("scope excludes other departments", func(t *testing.T) {
		pending, err := f.svc.ListPending(context.Background(), "tm-eng")
		require.NoError(t, err)
		for _, p := range pending {
			assert.NotEqual(t, "carol", p.EmployeeID)
		}
	})
}

func TestListMyRequests(t *testing.T) {
	f := newVisibilityFixture(t)

	first := f.lifecycle.create(t, "alice", "casual", "2026-03-10", "2026-03-11")
	second := f.lifecycle.create(t, "alice", "earned", "2026-04-01", "2026-04-02")

	t.Run("newest applied first", func(t *testing.T) {
		history, err := f.svc.ListMyRequests(context.Background(), "alice", leave.RequestFilter{})
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, second.ID, history[0].ID)
		assert.Equal(t, first.ID, history[1].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		_, err := f.lifecycle.svc.Approve(context.Background(), first.ID, "tl")
		require.NoError(t, err)

		status := leave.StatusApproved
		history, err := f.svc.ListMyRequests(context.Background(), "alice", leave.RequestFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, first.ID, history[0].ID)
	})

	t.Run("unknown status filter fails validation", func(t *testing.T) {
		status := leave.Status("bogus")
		_, err := f.svc.ListMyRequests(context.Background(), "alice", leave.RequestFilter{Status: &status})
		assert.Error(t, err)
	})
}

func TestTeamCalendar(t *testing.T) {
	f := newVisibilityFixture(t)

	inMarch := f.lifecycle.create(t, "alice", "casual", "2026-03-10", "2026-03-11")
	inApril := f.lifecycle.create(t, "alice", "earned", "2026-04-10", "2026-04-11")
	_, err := f.lifecycle.svc.Approve(context.Background(), inMarch.ID, "tl")
	require.NoError(t, err)
	_, err = f.lifecycle.svc.Approve(context.Background(), inApril.ID, "tl")
	require.NoError(t, err)

	calendar, err := f.svc.TeamCalendar(context.Background(), "tl", 2026, time.March)
	require.NoError(t, err)
	require.Len(t, calendar, 1)
	assert.Equal(t, inMarch.ID, calendar[0].ID)
}

func TestGetRequestVisibility(t *testing.T) {
	f := newVisibilityFixture(t)
	created := f.lifecycle.create(t, "alice", "casual", "2026-03-10", "2026-03-11")

	t.Run("owner sees own request", func(t *testing.T) {
		_, err := f.svc.GetRequest(context.Background(), created.ID, "alice")
		assert.NoError(t, err)
	})

	t.Run("covering manager sees it", func(t *testing.T) {
		_, err := f.svc.GetRequest(context.Background(), created.ID, "tl")
		assert.NoError(t, err)
		_, err = f.svc.GetRequest(context.Background(), created.ID, "tm-eng")
		assert.NoError(t, err)
		_, err = f.svc.GetRequest(context.Background(), created.ID, "gm")
		assert.NoError(t, err)
	})

	t.Run("any managerial role sees it even outside the reporting line", func(t *testing.T) {
		// tl is not bob's manager, but reading is broader than acting.
		bobs := f.lifecycle.create(t, "bob", "casual", "2026-03-10", "2026-03-11")

		got, err := f.svc.GetRequest(context.Background(), bobs.ID, "tl")
		require.NoError(t, err)
		assert.Equal(t, bobs.ID, got.ID)
	})

	t.Run("unrelated employee does not", func(t *testing.T) {
		_, err := f.svc.GetRequest(context.Background(), created.ID, "carol")
		assert.ErrorIs(t, err, leave.ErrNotAuthorized)
	})
}
