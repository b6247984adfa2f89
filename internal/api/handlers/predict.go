package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rohits-web03/plotwise/internal/api/middleware"
	"github.com/rohits-web03/plotwise/internal/models"
	"github.com/rohits-web03/plotwise/internal/pricing"
	"github.com/rohits-web03/plotwise/internal/utils"
)

// POST /predict
// Predict godoc
// @Summary Estimate a land parcel's price
// @Description Computes the estimate and records it in the caller's history.
// @Tags Predict
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	session, ok := middleware.SessionFrom(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	type Input struct {
		State            string      `json:"state"`
		City             string      `json:"city"`
		Sqft             json.Number `json:"sqft"`
		MainRoadDistance json.Number `json:"mainRoadDistance"`
		SoilType         string      `json:"soilType"`
		WaterLevel       json.Number `json:"waterLevel"`
		Latitude         any         `json:"latitude"`
		Longitude        any         `json:"longitude"`
	}

	var input Input

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	dec.UseNumber()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	if input.State == "" || input.City == "" || input.SoilType == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	sqft, err := input.Sqft.Float64()
	if err != nil || sqft <= 0 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid sqft value",
		})
		return
	}
	roadDist, err := input.MainRoadDistance.Float64()
	if err != nil || roadDist < 0 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid mainRoadDistance value",
		})
		return
	}
	waterLevel, err := input.WaterLevel.Float64()
	if err != nil || waterLevel < 0 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid waterLevel value",
		})
		return
	}

	coords := parseCoordinates(input.Latitude, input.Longitude)

	quote := pricing.Estimate(pricing.Input{
		State:            input.State,
		City:             input.City,
		Sqft:             sqft,
		MainRoadDistance: roadDist,
		SoilType:         input.SoilType,
		WaterLevel:       waterLevel,
		Coordinates:      coords,
	})

	search := models.Search{
		UserID:           session.UserID,
		State:            input.State,
		City:             input.City,
		Sqft:             sqft,
		MainRoadDistance: roadDist,
		SoilType:         input.SoilType,
		WaterLevel:       waterLevel,
		Latitude:         coords.Lat,
		Longitude:        coords.Lng,
		PredictedPrice:   quote.TotalPrice,
		PricePerSqft:     quote.PricePerSqft,
	}
	if err := h.store.CreateSearch(&search); err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to record search",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Prediction successful",
		Data: map[string]any{
			"predictedPrice": int(quote.TotalPrice),
			"pricePerSqft":   quote.PricePerSqft,
		},
	})
}

// parseCoordinates is the one lenient parse in the input path: absent
// coordinates default to (0, 0) and stay usable, while values that fail
// to parse mark the pair unusable so the location factor stays neutral.
// Every other numeric field is strict.
func parseCoordinates(lat, lng any) pricing.Coordinates {
	coords := pricing.Coordinates{Valid: true}
	for _, c := range []struct {
		raw any
		dst *float64
	}{
		{lat, &coords.Lat},
		{lng, &coords.Lng},
	} {
		if c.raw == nil {
			continue
		}
		v, err := coordFloat(c.raw)
		if err != nil {
			return pricing.Coordinates{}
		}
		*c.dst = v
	}
	return coords
}

func coordFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("unusable coordinate type %T", raw)
	}
}

// GET /history
// History godoc
// @Summary List the caller's past searches, newest first
// @Tags Predict
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	session, ok := middleware.SessionFrom(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	searches, err := h.store.SearchesByOwner(session.UserID)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}

	history := make([]map[string]any, 0, len(searches))
	for _, s := range searches {
		history = append(history, map[string]any{
			"state":          s.State,
			"city":           s.City,
			"sqft":           s.Sqft,
			"soilType":       s.SoilType,
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
