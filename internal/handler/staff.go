package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/repository"
)

func (h *Handler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.StaffFilter{}

	activeOnly, err := optionalBool(query.Get("active"))
	if err != nil {
		h.errorResponse(w, r, "Ungültiger Wert für active")
		return
	}
	filter.ActiveOnly = activeOnly != nil && *activeOnly

	if value := query.Get("groupID"); value != "" {
		groupID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "Ungültige Gruppen-ID")
			return
		}
		filter.GroupID = &groupID
	}

	if filter.Interns, err = optionalBool(query.Get("interns")); err != nil {
		h.errorResponse(w, r, "Ungültiger Wert für interns")
		return
	}

	staffList, err := h.repository.GetAllStaff(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Mitarbeiter geladen", staffList)
}

type staffDates struct {
	HireDate        *string `json:"hireDate" validate:"omitempty,datetime=2006-01-02"`
	TerminationDate *string `json:"terminationDate" validate:"omitempty,datetime=2006-01-02"`
}

func (d staffDates) apply(staff *domain.Staff) {
	if d.HireDate != nil {
		staff.HireDate = optionalDate(*d.HireDate)
	}
	if d.TerminationDate != nil {
		staff.TerminationDate = optionalDate(*d.TerminationDate)
	}
}

// optionalDate turns an empty string into a cleared date. The value is already validated.
func optionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &date
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName      string   `json:"firstName" validate:"required,max=100"`
		LastName       string   `json:"lastName" validate:"required,max=100"`
		Role           string   `json:"role" validate:"required,max=100"`
		GroupID        *int64   `json:"groupID" validate:"omitempty,gt=0"`
		EmploymentType string   `json:"employmentType" validate:"omitempty,oneof=full-time part-time intern"`
		WeeklyHours    *float64 `json:"weeklyHours" validate:"omitempty,gte=0,lte=60"`
		Email          string   `json:"email" validate:"omitempty,email"`
		Phone          string   `json:"phone" validate:"max=50"`
		IsIntern       bool     `json:"isIntern"`
		staffDates
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := &domain.Staff{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		FullName:       domain.ComposeFullName(req.FirstName, req.LastName),
		Role:           req.Role,
		GroupID:        req.GroupID,
		EmploymentType: domain.EmploymentType(req.EmploymentType),
		WeeklyHours:    req.WeeklyHours,
		Email:          req.Email,
		Phone:          req.Phone,
		IsIntern:       req.IsIntern,
		IsActive:       true,
	}
	if staff.EmploymentType == "" {
		staff.EmploymentType = domain.EmploymentFullTime
		if staff.IsIntern {
			staff.EmploymentType = domain.EmploymentIntern
		}
	}
	req.staffDates.apply(staff)

	if err := h.repository.CreateStaff(staff, actor(r)); err != nil {
		h.storageError(w, r, err, "Mitarbeiter konnte nicht angelegt werden")
		return
	}

	h.successResponse(w, r, "Mitarbeiter angelegt", staff)
}

func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffCtx).(*domain.Staff)
	h.successResponse(w, r, "Mitarbeiter geladen", staff)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName      *string  `json:"firstName" validate:"omitempty,min=1,max=100"`
		LastName       *string  `json:"lastName" validate:"omitempty,min=1,max=100"`
		Role           *string  `json:"role" validate:"omitempty,min=1,max=100"`
		GroupID        *int64   `json:"groupID" validate:"omitempty,gt=0"`
		ClearGroup     bool     `json:"clearGroup"`
		EmploymentType *string  `json:"employmentType" validate:"omitempty,oneof=full-time part-time intern"`
		WeeklyHours    *float64 `json:"weeklyHours" validate:"omitempty,gte=0,lte=60"`
		Email          *string  `json:"email" validate:"omitempty,email"`
		Phone          *string  `json:"phone" validate:"omitempty,max=50"`
		IsIntern       *bool    `json:"isIntern"`
		IsActive       *bool    `json:"isActive"`
		staffDates
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := r.Context().Value(StaffCtx).(*domain.Staff)

	if req.FirstName != nil {
		staff.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		staff.LastName = *req.LastName
	}
	staff.FullName = domain.ComposeFullName(staff.FirstName, staff.LastName)
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if req.GroupID != nil {
		staff.GroupID = req.GroupID
	}
	if req.ClearGroup {
		staff.GroupID = nil
	}
	if req.EmploymentType != nil {
		staff.EmploymentType = domain.EmploymentType(*req.EmploymentType)
	}
	if req.WeeklyHours != nil {
		staff.WeeklyHours = req.WeeklyHours
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.IsIntern != nil {
		staff.IsIntern = *req.IsIntern
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	req.staffDates.apply(staff)

	if err := h.repository.UpdateStaff(staff, actor(r)); err != nil {
		h.storageError(w, r, err, "Mitarbeiter konnte nicht geändert werden, bitte erneut versuchen")
		return
	}

	// names, groups and the intern flag all feed the totals
	h.invalidateAllTotals(r.Context())

	updated, err := h.repository.GetStaffByID(staff.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Mitarbeiter geändert", updated)
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffCtx).(*domain.Staff)

	if err := h.repository.DeleteStaff(staff.ID); err != nil {
		h.storageError(w, r, err, "Mitarbeiter existiert nicht")
		return
	}

	h.invalidateAllTotals(r.Context())

	h.successResponse(w, r, "Mitarbeiter gelöscht", nil)
}
