package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rohits-web03/plotwise/internal/models"
	"github.com/rohits-web03/plotwise/internal/pricing"
	"github.com/rohits-web03/plotwise/internal/repositories"
	"github.com/rohits-web03/plotwise/internal/utils"
)

// fallbackAvgPrice is reported when no searches exist yet.
const fallbackAvgPrice = 3500

const adminHistoryLimit = 100

// GET /admin/stats
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	totalUsers, err := h.store.CountUsersByRole(models.RoleUser)
	if err != nil {
		h.dbError(w)
		return
	}
	totalSearches, err := h.store.CountSearches()
	if err != nil {
		h.dbError(w)
		return
	}
	avg, ok, err := h.store.AveragePricePerSqft()
	if err != nil {
		h.dbError(w)
		return
	}
	avgPrice := fallbackAvgPrice
	if ok {
		avgPrice = int(avg)
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Stats retrieved successfully",
		Data: map[string]any{
			"totalUsers":    totalUsers,
			"totalSearches": totalSearches,
			"avgPrice":      avgPrice,
			"activeToday":   totalUsers,
		},
	})
}

// GET /admin/users
func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	users, err := h.store.ListUsersByRole(models.RoleUser)
	if err != nil {
		h.dbError(w)
		return
	}

	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, map[string]any{
			"name":     u.Name,
			"email":    u.Email,
			"role":     u.Role,
			"regDate":  u.CreatedAt.Format("2006-01-02"),
			"searches": len(u.Searches),
		})
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    map[string]any{"users": out},
	})
}

// GET /admin/history
func (h *Handler) AdminHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	searches, err := h.store.RecentSearches(adminHistoryLimit)
	if err != nil {
		h.dbError(w)
		return
	}

	history := make([]map[string]any, 0, len(searches))
	for _, s := range searches {
		history = append(history, map[string]any{
			"userName":       s.User.Name,
			"state":          s.State,
			"city":           s.City,
			"sqft":           s.Sqft,
			"predictedPrice": int(s.PredictedPrice),
			"pricePerSqft":   s.PricePerSqft,
			"timestamp":      s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "History retrieved successfully",
		Data:    map[string]any{"history": history},
	})
}

// GET /admin/price-comparison
func (h *Handler) PriceComparison(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Price comparison retrieved successfully",
		Data:    map[string]any{"comparison": pricing.HistoricalComparison()},
	})
}

// POST /admin/edit-user
func (h *Handler) EditUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var input struct {
		OldEmail string `json:"oldEmail"`
		NewName  string `json:"newName"`
		NewEmail string `json:"newEmail"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	if input.OldEmail == "" || input.NewName == "" || input.NewEmail == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	switch err := h.store.UpdateUserProfile(input.OldEmail, input.NewName, input.NewEmail); {
	case err == nil:
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "User updated successfully",
		})
	case errors.Is(err, repositories.ErrNotFound):
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "User not found",
		})
	case errors.Is(err, repositories.ErrEmailTaken):
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Email already in use",
		})
	default:
		h.dbError(w)
	}
}

// POST /admin/delete-user
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var input struct {
		Email string `json:"email"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Email == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	switch err := h.store.DeleteUserByEmail(input.Email); {
	case err == nil:
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "User deleted successfully",
		})
	case errors.Is(err, repositories.ErrNotFound):
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "User not found",
		})
	case errors.Is(err, repositories.ErrAdminProtected):
		utils.JSONResponse(w, http.StatusForbidden, utils.Payload{
			Success: false,
			Message: "Cannot delete admin user",
		})
	default:
		h.dbError(w)
	}
}

func (h *Handler) dbError(w http.ResponseWriter) {
	utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
		Success: false,
		Message: "Database error",
	})
}
