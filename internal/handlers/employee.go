package handlers

import (
	"errors"
	"net/http"

	"Staff/internal/dto"
	"Staff/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler renders the employee record pages. Display logic only: all
// CRUD goes through the EmployeeService access layer.
type EmployeeHandler struct {
	svc *service.EmployeeService
}

// NewEmployeeHandler returns a new EmployeeHandler.
func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// List renders the employee list.
func (h *EmployeeHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "employee_list.tmpl", gin.H{
		"Title":     "Employee Records",
		"Employees": list,
	})
}

// CreateForm renders the empty creation form.
func (h *EmployeeHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "employee_create.tmpl", gin.H{
		"Title": "Add New Employee",
		"Form":  dto.EmployeeForm{},
	})
}

// CreateSubmit persists a new record, redirecting to the list on success and
// re-rendering the form with the submitted values on failure.
func (h *EmployeeHandler) CreateSubmit(c *gin.Context) {
	var form dto.EmployeeForm
	_ = c.ShouldBind(&form)

	if _, err := h.svc.Create(c.Request.Context(), form.Fields()); err != nil {
		c.HTML(http.StatusOK, "employee_create.tmpl", gin.H{
			"Title": "Add New Employee - Error",
			"Form":  form,
			"Error": err.Error(),
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/employee_records")
}

// UpdatePicker renders the list with edit links.
func (h *EmployeeHandler) UpdatePicker(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "employee_update_list.tmpl", gin.H{
		"Title":     "Update Employee Records",
		"Employees": list,
	})
}

// EditForm renders the edit form pre-filled with the record at :id.
func (h *EmployeeHandler) EditForm(c *gin.Context) {
	e, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "employee_update.tmpl", gin.H{
		"Title":    "Edit Employee",
		"Employee": e,
	})
}

// UpdateSubmit fully replaces the five fields of the record at :id. On failure
// the record is re-fetched to re-render the form; if that fetch fails too, the
// generic error page is shown.
func (h *EmployeeHandler) UpdateSubmit(c *gin.Context) {
	id := c.Param("id")
	var form dto.EmployeeForm
	_ = c.ShouldBind(&form)

	if _, err := h.svc.Update(c.Request.Context(), id, form.Fields()); err != nil {
		e, fetchErr := h.svc.GetByID(c.Request.Context(), id)
		if fetchErr != nil {
			renderError(c, err)
			return
		}
		c.HTML(http.StatusOK, "employee_update.tmpl", gin.H{
			"Title":    "Edit Employee - Error",
			"Employee": e,
			"Error":    err.Error(),
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/employee_records")
}

// DeleteList renders the delete-confirmation listing.
func (h *EmployeeHandler) DeleteList(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "employee_delete.tmpl", gin.H{
		"Title":     "Delete Employee Records",
		"Employees": list,
	})
}

// DeleteSubmit removes the record at :id and returns to the delete listing.
// Only a store-level failure surfaces as the error page.
func (h *EmployeeHandler) DeleteSubmit(c *gin.Context) {
	_, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/employee_records/delete")
}

func renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrNotFound) {
		status = http.StatusNotFound
	}
	c.HTML(status, "error.tmpl", gin.H{
		"Title": "Error",
		"Error": err.Error(),
	})
}
