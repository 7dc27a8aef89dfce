package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/handler/http/response"
	leaveService "github.com/leavetrack/leavetrack-backend-go/internal/service/leave"
	reportService "github.com/leavetrack/leavetrack-backend-go/internal/service/report"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListMyRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	MyBalances(w http.ResponseWriter, r *http.Request)
	MyStats(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	requests   *leaveService.RequestService
	visibility *leaveService.VisibilityService
	balances   *leaveService.BalanceService
	reports    *reportService.Service
}

func NewLeaveHandler(
	requests *leaveService.RequestService,
	visibility *leaveService.VisibilityService,
	balances *leaveService.BalanceService,
	reports *reportService.Service,
) LeaveHandler {
	return &LeaveHandlerImpl{
		requests:   requests,
		visibility: visibility,
		balances:   balances,
		reports:    reports,
	}
}

func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	created, err := h.requests.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

func (h *LeaveHandlerImpl) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var filter leave.RequestFilter
	if s := r.URL.Query().Get("status"); s != "" {
		status := leave.Status(s)
		filter.Status = &status
	}
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		filter.Year = &year
	}

	requests, err := h.visibility.ListMyRequests(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	req, err := h.visibility.GetRequest(r.Context(), requestID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, req)
}

func (h *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	cancelled, err := h.requests.Cancel(r.Context(), requestID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", cancelled)
}

func (h *LeaveHandlerImpl) MyBalances(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	balances, err := h.balances.MyBalances(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

func (h *LeaveHandlerImpl) MyStats(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	year, ok := yearFromQuery(w, r)
	if !ok {
		return
	}

	stats, err := h.reports.MyStats(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// yearFromQuery parses the optional ?year= parameter; zero means the
// current year. Writes the error response itself on bad input.
func yearFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	y := r.URL.Query().Get("year")
	if y == "" {
		return 0, true
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return 0, false
	}
	return year, true
}
