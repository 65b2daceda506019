package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/outfitgenius/wardrobe-api/models"
	"github.com/outfitgenius/wardrobe-api/storage"
	"github.com/outfitgenius/wardrobe-api/utils"
)

// ClothingAnalyzeRequest represents the request body for clothing analysis
type ClothingAnalyzeRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	ImageBase64 string `json:"image_base64" validate:"required"`
}

// AnalyzeClothingHandler classifies an uploaded clothing image and saves it
// to the user's wardrobe
func (a *API) AnalyzeClothingHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Clothing Analyze API]")

	var req ClothingAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "user_id and image_base64 are required", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Analyze Request: UserID=%s", req.UserID))

	// 1. Classify the image
	analysis, err := a.analyzer.AnalyzeClothing(r.Context(), req.ImageBase64)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to analyze clothing: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// 2. Save the clothing item
	item := models.ClothingItem{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		ImageBase64: req.ImageBase64,
		Category:    analysis.Category,
		Color:       analysis.Color,
		Style:       analysis.Style,
		Description: analysis.Description,
		CreatedAt:   time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.store.InsertClothingItem(ctx, item); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to analyze clothing: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, item)
}

// GetUserClothingHandler lists all clothing items owned by a user
func (a *API) GetUserClothingHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := a.store.ListClothingItems(ctx, userID)
	if err != nil {
		utils.RespondError(w, nil, "Failed to fetch clothing items", http.StatusInternalServerError)
		return
	}

	// Ensure empty slice is returned as [] instead of null
	if items == nil {
		items = []models.ClothingItem{}
	}

	utils.RespondJSON(w, http.StatusOK, items)
}

// DeleteClothingHandler removes a clothing item scoped to its owner.
// Outfits that reference the item keep its identifier; references are weak.
func (a *API) DeleteClothingHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Clothing Delete API]")

	itemID := mux.Vars(r)["item_id"]
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		utils.RespondError(w, &logMessageBuilder, "user_id is required", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Delete Request: ItemID=%s, UserID=%s", itemID, userID))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := a.store.DeleteClothingItem(ctx, itemID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		utils.RespondError(w, &logMessageBuilder, "Clothing item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to delete clothing item", http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Clothing item deleted successfully"})
}
