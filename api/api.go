package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/outfitgenius/wardrobe-api/imagegen"
	"github.com/outfitgenius/wardrobe-api/storage"
	"github.com/outfitgenius/wardrobe-api/utils"
	"github.com/outfitgenius/wardrobe-api/vision"
)

// API bundles the collaborators the handlers depend on
type API struct {
	store     storage.Store
	analyzer  vision.Analyzer
	generator imagegen.Generator
	archive   storage.Archiver // optional, nil disables archival
	validate  *validator.Validate
}

// New builds the handler set around the given collaborators
func New(store storage.Store, analyzer vision.Analyzer, generator imagegen.Generator, archive storage.Archiver) *API {
	return &API{
		store:     store,
		analyzer:  analyzer,
		generator: generator,
		archive:   archive,
		validate:  validator.New(),
	}
}

// RegisterRoutes attaches all endpoints to the given router
func (a *API) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", a.RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/clothing/analyze", a.AnalyzeClothingHandler).Methods(http.MethodPost)
	r.HandleFunc("/clothing/{user_id}", a.GetUserClothingHandler).Methods(http.MethodGet)
	r.HandleFunc("/clothing/{item_id}", a.DeleteClothingHandler).Methods(http.MethodDelete)
	r.HandleFunc("/outfit/generate", a.GenerateOutfitHandler).Methods(http.MethodPost)
	r.HandleFunc("/outfit/{user_id}", a.GetUserOutfitsHandler).Methods(http.MethodGet)
	r.HandleFunc("/status", a.CreateStatusCheckHandler).Methods(http.MethodPost)
	r.HandleFunc("/status", a.GetStatusChecksHandler).Methods(http.MethodGet)
}

// RootHandler reports liveness
func (a *API) RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Outfit Genius API is running!"})
}
