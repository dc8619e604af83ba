package http

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

func employeeNotFound(w http.ResponseWriter, id int64) {
	response.NotFound(w, fmt.Sprintf("Employee with id %d was not found.", id))
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req, err := pagingFromQuery(r)
	if err != nil {
		response.HandleError(w, r, "listing employees", err)
		return
	}

	result, err := h.employeeService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, "listing employees", err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, r, "retrieving the employee", err)
		return
	}

	result, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, r, "retrieving the employee", err)
		return
	}
	if result == nil {
		employeeNotFound(w, id)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, "creating the employee", err)
		return
	}

	response.Created(w, fmt.Sprintf("%s/employees/%d", apiPrefix, result.ID), result)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, r, "updating the employee", err)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, r, "updating the employee", err)
		return
	}
	if result == nil {
		employeeNotFound(w, id)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, r, "deleting the employee", err)
		return
	}

	deleted, err := h.employeeService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, r, "deleting the employee", err)
		return
	}
	if !deleted {
		employeeNotFound(w, id)
		return
	}

	response.NoContent(w)
}
