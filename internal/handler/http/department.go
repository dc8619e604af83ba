package http

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &departmentHandlerImpl{
		departmentService: departmentService,
	}
}

func departmentNotFound(w http.ResponseWriter, id int64) {
	response.NotFound(w, fmt.Sprintf("Department with id %d was not found.", id))
}

func (h *departmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req, err := pagingFromQuery(r)
	if err != nil {
		response.HandleError(w, r, "listing departments", err)
		return
	}

	result, err := h.departmentService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, "listing departments", err)
		return
	}

	response.Success(w, result)
}

func (h *departmentHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, r, "retrieving the department", err)
		return
	}

	result, err := h.departmentService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, r, "retrieving the department", err)
		return
	}
	if result == nil {
		departmentNotFound(w, id)
		return
	}

	response.Success(w, result)
}

func (h *departmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, "creating the department", err)
		return
	}

	response.Created(w, fmt.Sprintf("%s/departments/%d", apiPrefix, result.ID), result)
}

func (h *departmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, r, "updating the department", err)
		return
	}

	var req department.UpdateDepartmentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, r, "updating the department", err)
		return
	}
	if result == nil {
		departmentNotFound(w, id)
		return
	}

	response.Success(w, result)
}

func (h *departmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, r, "deleting the department", err)
		return
	}

	deleted, err := h.departmentService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, r, "deleting the department", err)
		return
	}
	if !deleted {
		departmentNotFound(w, id)
		return
	}

	response.NoContent(w)
}
