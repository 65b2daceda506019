package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/outfitgenius/wardrobe-api/imagegen"
	"github.com/outfitgenius/wardrobe-api/models"
	"github.com/outfitgenius/wardrobe-api/storage"
	"github.com/outfitgenius/wardrobe-api/vision"
)

// 1x1 pixel PNG, the same payload the smoke harness uploads
const testImageBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// fakeStore is an in-memory Store for handler tests. Error fields force the
// corresponding operation to fail.
type fakeStore struct {
	mu       sync.RWMutex
	clothing []models.ClothingItem
	outfits  []models.GeneratedOutfit
	checks   []models.StatusCheck

	insertClothingErr error
	listClothingErr   error
	findClothingErr   error
	deleteClothingErr error
	insertOutfitErr   error
	listOutfitsErr    error
	insertCheckErr    error
	listChecksErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (f *fakeStore) InsertClothingItem(_ context.Context, item models.ClothingItem) error {
	if f.insertClothingErr != nil {
		return f.insertClothingErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clothing = append(f.clothing, item)
	return nil
}

func (f *fakeStore) ListClothingItems(_ context.Context, userID string) ([]models.ClothingItem, error) {
	if f.listClothingErr != nil {
		return nil, f.listClothingErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var items []models.ClothingItem
	for _, item := range f.clothing {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeStore) FindClothingItem(_ context.Context, itemID, userID string) (*models.ClothingItem, error) {
	if f.findClothingErr != nil {
		return nil, f.findClothingErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, item := range f.clothing {
		if item.ID == itemID && item.UserID == userID {
			found := item
			return &found, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) DeleteClothingItem(_ context.Context, itemID, userID string) error {
	if f.deleteClothingErr != nil {
		return f.deleteClothingErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, item := range f.clothing {
		if item.ID == itemID && item.UserID == userID {
			f.clothing = append(f.clothing[:i], f.clothing[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) InsertOutfit(_ context.Context, outfit models.GeneratedOutfit) error {
	if f.insertOutfitErr != nil {
		return f.insertOutfitErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outfits = append(f.outfits, outfit)
	return nil
}

func (f *fakeStore) ListOutfits(_ context.Context, userID string) ([]models.GeneratedOutfit, error) {
	if f.listOutfitsErr != nil {
		return nil, f.listOutfitsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var outfits []models.GeneratedOutfit
	for _, outfit := range f.outfits {
		if outfit.UserID == userID {
			outfits = append(outfits, outfit)
		}
	}
	return outfits, nil
}

func (f *fakeStore) InsertStatusCheck(_ context.Context, check models.StatusCheck) error {
	if f.insertCheckErr != nil {
		return f.insertCheckErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks = append(f.checks, check)
	return nil
}

func (f *fakeStore) ListStatusChecks(_ context.Context) ([]models.StatusCheck, error) {
	if f.listChecksErr != nil {
		return nil, f.listChecksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]models.StatusCheck(nil), f.checks...), nil
}

// seedItem puts a clothing item into the fake store directly
func seedItem(f *fakeStore, id, userID, color, description, category string) models.ClothingItem {
	item := models.ClothingItem{
		ID:          id,
		UserID:      userID,
		ImageBase64: testImageBase64,
		Category:    category,
		Color:       color,
		Style:       "casual",
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clothing = append(f.clothing, item)
	return item
}

// fakeGenerator returns canned bytes or a canned error and records the
// prompts it was given
type fakeGenerator struct {
	result     []byte
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) ([]byte, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeArchive records uploads and presigns keys deterministically
type fakeArchive struct {
	uploads   map[string][]byte
	uploadErr error
}

func (f *fakeArchive) Upload(_ context.Context, objectKey string, data []byte, _ string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	f.uploads[objectKey] = data
	return nil
}

func (f *fakeArchive) PresignURL(_ context.Context, objectKey string) (string, error) {
	return "https://archive.test/" + objectKey, nil
}

// newTestRouter wires the handler set with fakes behind the /api prefix
func newTestRouter(store storage.Store, generator imagegen.Generator, archive storage.Archiver) *mux.Router {
	a := New(store, vision.NewStubAnalyzer(), generator, archive)
	router := mux.NewRouter()
	a.RegisterRoutes(router.PathPrefix("/api").Subrouter())
	return router
}

func doRequest(t *testing.T, router *mux.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doRawRequest(t *testing.T, router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
}
