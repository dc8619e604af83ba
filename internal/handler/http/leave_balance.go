package http

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveBalanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetByEmpNo(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type leaveBalanceHandlerImpl struct {
	leaveBalanceService leave.LeaveBalanceService
}

func NewLeaveBalanceHandler(leaveBalanceService leave.LeaveBalanceService) LeaveBalanceHandler {
	return &leaveBalanceHandlerImpl{
		leaveBalanceService: leaveBalanceService,
	}
}

func (h *leaveBalanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req, err := pagingFromQuery(r)
	if err != nil {
		response.HandleError(w, r, "listing leave balances", err)
		return
	}

	result, err := h.leaveBalanceService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, "listing leave balances", err)
		return
	}

	response.Success(w, result)
}

func (h *leaveBalanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, r, "retrieving the leave balance", err)
		return
	}

	result, err := h.leaveBalanceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, r, "retrieving the leave balance", err)
		return
	}
	if result == nil {
		response.NotFound(w, fmt.Sprintf("Leave balance with id %d was not found.", id))
		return
	}

	response.Success(w, result)
}

func (h *leaveBalanceHandlerImpl) GetByEmpNo(w http.ResponseWriter, r *http.Request) {
	empNo := chi.URLParam(r, "empNo")

	result, err := h.leaveBalanceService.GetByEmpNo(r.Context(), empNo)
	if err != nil {
		response.HandleError(w, r, "retrieving the leave balance", err)
		return
	}
	if result == nil {
		response.NotFound(w, fmt.Sprintf("Leave balance for employee '%s' was not found.", empNo))
		return
	}

	response.Success(w, result)
}

func (h *leaveBalanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveBalanceRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveBalanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, "creating the leave balance", err)
		return
	}

	response.Created(w, fmt.Sprintf("%s/leave-balances/%d", apiPrefix, result.ID), result)
}

func (h *leaveBalanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, r, "updating the leave balance", err)
		return
	}

	var req leave.UpdateLeaveBalanceRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveBalanceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, r, "updating the leave balance", err)
		return
	}
	if result == nil {
		response.NotFound(w, fmt.Sprintf("Leave balance with id %d was not found.", id))
		return
	}

	response.Success(w, result)
}

func (h *leaveBalanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, r, "deleting the leave balance", err)
		return
	}

	deleted, err := h.leaveBalanceService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, r, "deleting the leave balance", err)
		return
	}
	if !deleted {
		response.NotFound(w, fmt.Sprintf("Leave balance with id %d was not found.", id))
		return
	}

	response.NoContent(w)
}
