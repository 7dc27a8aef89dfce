package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/handler/http/response"
	leaveService "github.com/leavetrack/leavetrack-backend-go/internal/service/leave"
	reportService "github.com/leavetrack/leavetrack-backend-go/internal/service/report"
)

type ManagerHandler interface {
	ListPending(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	TeamMembers(w http.ResponseWriter, r *http.Request)
	TeamCalendar(w http.ResponseWriter, r *http.Request)
	EmployeeBalance(w http.ResponseWriter, r *http.Request)
	UpdateEmployeeBalance(w http.ResponseWriter, r *http.Request)
	TeamReport(w http.ResponseWriter, r *http.Request)
}

type ManagerHandlerImpl struct {
	requests   *leaveService.RequestService
	visibility *leaveService.VisibilityService
	balances   *leaveService.BalanceService
	reports    *reportService.Service
}

func NewManagerHandler(
	requests *leaveService.RequestService,
	visibility *leaveService.VisibilityService,
	balances *leaveService.BalanceService,
	reports *reportService.Service,
) ManagerHandler {
	return &ManagerHandlerImpl{
		requests:   requests,
		visibility: visibility,
		balances:   balances,
		reports:    reports,
	}
}

func (h *ManagerHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	pending, err := h.visibility.ListPending(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

func (h *ManagerHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	approved, err := h.requests.Approve(r.Context(), requestID, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", approved)
}

func (h *ManagerHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req leave.RejectRequestRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("RejectRequest decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.RequestID = requestID
	req.ActorID = actorID

	rejected, err := h.requests.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", rejected)
}

func (h *ManagerHandlerImpl) TeamMembers(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	members, err := h.visibility.TeamMembers(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

func (h *ManagerHandlerImpl) TeamCalendar(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		month = time.Month(parsed)
	}

	calendar, err := h.visibility.TeamCalendar(r.Context(), actorID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar)
}

func (h *ManagerHandlerImpl) EmployeeBalance(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	employeeID, ok := idParam(w, r, "employeeId")
	if !ok {
		return
	}

	balances, err := h.balances.EmployeeBalances(r.Context(), actorID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

func (h *ManagerHandlerImpl) UpdateEmployeeBalance(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	employeeID, ok := idParam(w, r, "employeeId")
	if !ok {
		return
	}

	var req leave.UpdateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployeeBalance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ActorID = actorID
	req.EmployeeID = employeeID

	balances, err := h.balances.UpdateBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance updated", balances)
}

func (h *ManagerHandlerImpl) TeamReport(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	year, ok := yearFromQuery(w, r)
	if !ok {
		return
	}

	team, err := h.visibility.VisibleEmployees(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.reports.TeamReport(r.Context(), team, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
