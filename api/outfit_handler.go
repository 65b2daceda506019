package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/outfitgenius/wardrobe-api/imagegen"
	"github.com/outfitgenius/wardrobe-api/models"
	"github.com/outfitgenius/wardrobe-api/storage"
	"github.com/outfitgenius/wardrobe-api/utils"
)

// OutfitGenerateRequest represents the request body for outfit generation.
// An empty clothing_items list passes shape validation; it fails later as
// "nothing resolved", not as a bad request.
type OutfitGenerateRequest struct {
	UserID        string   `json:"user_id" validate:"required"`
	Style         string   `json:"style" validate:"required"` // casual, trendy, formal, date, sport, party, travel
	ClothingItems []string `json:"clothing_items"`
}

// GenerateOutfitHandler renders an outfit composite from the user's clothing
// items and persists the result
func (a *API) GenerateOutfitHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Outfit Generate API]")

	var req OutfitGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "user_id and style are required", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generate Request: UserID=%s, Style=%s, Items=%d", req.UserID, req.Style, len(req.ClothingItems)))

	// 1. Resolve the referenced items, scoped to the requesting user.
	// Identifiers that do not resolve are skipped silently.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var items []models.ClothingItem
	for _, itemID := range req.ClothingItems {
		item, err := a.store.FindClothingItem(ctx, itemID, req.UserID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			utils.RespondError(w, &logMessageBuilder, "Failed to generate outfit: "+err.Error(), http.StatusInternalServerError)
			return
		}
		items = append(items, *item)
	}

	if len(items) == 0 {
		utils.RespondError(w, &logMessageBuilder, "No clothing items found", http.StatusNotFound)
		return
	}

	// 2. Generate the outfit image
	prompt := imagegen.BuildOutfitPrompt(req.Style, items)

	// Use a background context with timeout for the heavy generation call
	genCtx, cancelGen := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancelGen()

	imageBytes, err := a.generator.Generate(genCtx, prompt)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generation failed: %v", err))
		switch {
		case errors.Is(err, imagegen.ErrNotConfigured):
			utils.RespondError(w, &logMessageBuilder, "Image generation service not available", http.StatusInternalServerError)
		case strings.Contains(err.Error(), "429") || strings.Contains(strings.ToLower(err.Error()), "quota"):
			utils.RespondError(w, &logMessageBuilder, "Quota exceeded. Please try again later.", http.StatusTooManyRequests)
		case errors.Is(err, imagegen.ErrNoImage):
			utils.RespondError(w, &logMessageBuilder, "Failed to generate outfit image", http.StatusInternalServerError)
		default:
			utils.RespondError(w, &logMessageBuilder, "Failed to generate outfit: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	// 3. Compose the outfit description from the resolved items
	itemsDesc := make([]string, 0, len(items))
	for _, item := range items {
		itemsDesc = append(itemsDesc, item.Description)
	}

	outfit := models.GeneratedOutfit{
		ID:                uuid.NewString(),
		UserID:            req.UserID,
		Style:             req.Style,
		ClothingItems:     req.ClothingItems, // the requested list verbatim, unresolved ids included
		OutfitImageBase64: base64.StdEncoding.EncodeToString(imageBytes),
		Description:       fmt.Sprintf("A %s outfit featuring %d items: %s", req.Style, len(items), strings.Join(itemsDesc, ", ")),
		CreatedAt:         time.Now().UTC(),
	}

	// 4. Archive a copy to S3 when configured. The base64 payload in the
	// record stays authoritative, so archival failure is not fatal.
	if a.archive != nil {
		objectKey := fmt.Sprintf("outfits/%s/%s.png", req.UserID, outfit.ID)
		if err := a.archive.Upload(r.Context(), objectKey, imageBytes, "image/png"); err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to archive outfit image: %v", err))
		} else {
			outfit.ImageKey = objectKey
			if url, err := a.archive.PresignURL(r.Context(), objectKey); err == nil {
				outfit.ImageURL = url
			}
		}
	}

	// 5. Save the generated outfit
	saveCtx, cancelSave := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSave()

	if err := a.store.InsertOutfit(saveCtx, outfit); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to generate outfit: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, outfit)
}

// GetUserOutfitsHandler lists all generated outfits owned by a user
func (a *API) GetUserOutfitsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	outfits, err := a.store.ListOutfits(ctx, userID)
	if err != nil {
		utils.RespondError(w, nil, "Failed to fetch outfits", http.StatusInternalServerError)
		return
	}

	// Fill presigned URLs for archived images
	if a.archive != nil {
		for i := range outfits {
			if outfits[i].ImageKey == "" {
				continue
			}
			if url, err := a.archive.PresignURL(r.Context(), outfits[i].ImageKey); err == nil {
				outfits[i].ImageURL = url
			}
		}
	}

	// Ensure empty slice is returned as [] instead of null
	if outfits == nil {
		outfits = []models.GeneratedOutfit{}
	}

	utils.RespondJSON(w, http.StatusOK, outfits)
}
