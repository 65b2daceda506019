package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/outfitgenius/wardrobe-api/models"
	"github.com/outfitgenius/wardrobe-api/utils"
)

// StatusCheckRequest represents the request body for a status check
type StatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

// CreateStatusCheckHandler persists a liveness ping from a client
func (a *API) CreateStatusCheckHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Status Create API]")

	var req StatusCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "client_name is required", http.StatusBadRequest)
		return
	}

	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.store.InsertStatusCheck(ctx, check); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to create status check", http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, check)
}

// GetStatusChecksHandler lists recorded status checks
func (a *API) GetStatusChecksHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	checks, err := a.store.ListStatusChecks(ctx)
	if err != nil {
		utils.RespondError(w, nil, "Failed to fetch status checks", http.StatusInternalServerError)
		return
	}

	// Ensure empty slice is returned as [] instead of null
	if checks == nil {
		checks = []models.StatusCheck{}
	}

	utils.RespondJSON(w, http.StatusOK, checks)
}
