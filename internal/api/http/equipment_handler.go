package http

import (
	"net/http"
	"strconv"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"
	"reelgear-backend/internal/service"

	"github.com/gorilla/mux"
)

type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
}

func NewEquipmentHandler(equipmentSvc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc}
}

type equipmentRequest struct {
	Name          string   `json:"name" validate:"required"`
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	Category      string   `json:"category" validate:"required"`
	Subcategory   string   `json:"subcategory"`
	Description   string   `json:"description"`
	Condition     string   `json:"condition" validate:"required"`
	YearPurchased string   `json:"year_purchased"`
	SerialNumber  string   `json:"serial_number"`
	DailyRate     int64    `json:"daily_rate" validate:"required,gt=0"`
	WeeklyRate    int64    `json:"weekly_rate" validate:"required,gt=0"`
	Availability  string   `json:"availability"`
	Accessories   []string `json:"accessories"`
}

func (req *equipmentRequest) toDomain() *domain.Equipment {
	return &domain.Equipment{
		Name:          req.Name,
		Brand:         req.Brand,
		Model:         req.Model,
		Category:      domain.EquipmentCategory(req.Category),
		Subcategory:   req.Subcategory,
		Description:   req.Description,
		Condition:     domain.EquipmentCondition(req.Condition),
		YearPurchased: req.YearPurchased,
		SerialNumber:  req.SerialNumber,
		DailyRate:     req.DailyRate,
		WeeklyRate:    req.WeeklyRate,
		Availability:  domain.EquipmentAvailability(req.Availability),
		Accessories:   req.Accessories,
	}
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req equipmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	eq := req.toDomain()
	if err := h.equipmentSvc.AddEquipment(r.Context(), claims.UserID, eq); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	eq, err := h.equipmentSvc.GetEquipment(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

// Update applies a partial patch: absent fields keep their current value.
func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	current, err := h.equipmentSvc.GetEquipment(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var patch struct {
		Name          *string   `json:"name"`
		Brand         *string   `json:"brand"`
		Model         *string   `json:"model"`
		Category      *string   `json:"category"`
		Subcategory   *string   `json:"subcategory"`
		Description   *string   `json:"description"`
		Condition     *string   `json:"condition"`
		YearPurchased *string   `json:"year_purchased"`
		SerialNumber  *string   `json:"serial_number"`
		DailyRate     *int64    `json:"daily_rate"`
		WeeklyRate    *int64    `json:"weekly_rate"`
		Availability  *string   `json:"availability"`
		Accessories   *[]string `json:"accessories"`
	}
	if !decodeAndValidate(w, r, &patch) {
		return
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&current.Name, patch.Name)
	applyString(&current.Brand, patch.Brand)
	applyString(&current.Model, patch.Model)
	applyString(&current.Subcategory, patch.Subcategory)
	applyString(&current.Description, patch.Description)
	applyString(&current.YearPurchased, patch.YearPurchased)
	applyString(&current.SerialNumber, patch.SerialNumber)
	if patch.Category != nil {
		current.Category = domain.EquipmentCategory(*patch.Category)
	}
	if patch.Condition != nil {
		current.Condition = domain.EquipmentCondition(*patch.Condition)
	}
	if patch.DailyRate != nil {
		current.DailyRate = *patch.DailyRate
	}
	if patch.WeeklyRate != nil {
		current.WeeklyRate = *patch.WeeklyRate
	}
	if patch.Availability != nil {
		current.Availability = domain.EquipmentAvailability(*patch.Availability)
	}
	if patch.Accessories != nil {
		current.Accessories = *patch.Accessories
	}
	current.Vendor = nil

	if err := h.equipmentSvc.UpdateEquipment(r.Context(), claims.UserID, current); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, current)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.equipmentSvc.RetireEquipment(r.Context(), claims.UserID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Search is the public catalog: mine=true narrows to the vendor's own
// listings and requires authentication.
func (h *EquipmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	if r.URL.Query().Get("mine") == "true" {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		items, total, err := h.equipmentSvc.ListMyEquipment(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pagedResponse{Items: items, Total: total, Page: page})
		return
	}

	filter := repository.EquipmentFilter{
		Query:        r.URL.Query().Get("q"),
		Category:     domain.EquipmentCategory(r.URL.Query().Get("category")),
		Availability: domain.EquipmentAvailability(r.URL.Query().Get("availability")),
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("max_daily_rate"), 10, 64); err == nil {
		filter.MaxDailyRate = v
	}

	items, total, err := h.equipmentSvc.SearchEquipment(r.Context(), filter, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: items, Total: total, Page: page})
}

// pathID parses the {name} route variable as an int32 id.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return int32(id), true
}
