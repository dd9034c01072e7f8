// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/fridgechef/internal/auth"
	"github.com/tomtom215/fridgechef/internal/config"
	"github.com/tomtom215/fridgechef/internal/models"
)

var testNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

// fakeStore is an in-memory Store.
type fakeStore struct {
	mu      sync.Mutex
	items   map[string][]models.PantryItem
	listErr error
	saveErr error
	pingErr error
	created []models.PantryItem
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string][]models.PantryItem)}
}

func (f *fakeStore) ListPantryItems(ctx context.Context, userID string) ([]models.PantryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.PantryItem{}, f.items[userID]...), nil
}

func (f *fakeStore) CreatePantryItem(ctx context.Context, item *models.PantryItem) (*models.PantryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	stored := *item
	stored.ID = fmt.Sprintf("item-%d", len(f.created)+1)
	stored.CreatedAt = testNow
	f.created = append(f.created, stored)
	f.items[item.UserID] = append(f.items[item.UserID], stored)
	return &stored, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}

func (f *fakeStore) add(userID string, items ...models.PantryItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[userID] = append(f.items[userID], items...)
}

// fakeSource is a fixed catalog. With hang set it blocks until the context
// is done.
type fakeSource struct {
	recipes []models.Recipe
	err     error
	hang    bool
}

func (f *fakeSource) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	if f.hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.recipes, f.err
}

// fakeRevoker records revoked token IDs.
type fakeRevoker struct {
	mu      sync.Mutex
	revoked []string
	err     error
}

func (f *fakeRevoker) Revoke(ctx context.Context, claims *auth.Claims) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, claims.ID)
	return nil
}

func testRecommendConfig() *config.RecommendConfig {
	return testRecommendConfigWithTopK(3)
}

func testRecommendConfigWithTopK(k int) *config.RecommendConfig {
	return &config.RecommendConfig{TopK: k, FullThreshold: 80, HalfThreshold: 50}
}

func newTestHandler(t *testing.T, store Store, source *fakeSource, revoker TokenRevoker) *Handler {
	t.Helper()
	h, err := NewHandler(store, source, revoker, testRecommendConfig())
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	h.now = func() time.Time { return testNow }
	return h
}

func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(auth.ContextWithUserID(r.Context(), userID))
}

// envelope is the decoded APIResponse with a typed payload.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func decodeEnvelope[T any](t *testing.T, body []byte) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", body, err)
	}
	return env
}

func assertError(t *testing.T, body []byte, wantCode, wantMessage string) {
	t.Helper()
	env := decodeEnvelope[json.RawMessage](t, body)
	if env.Success {
		t.Fatal("success = true, want false")
	}
	if env.Error == nil {
		t.Fatal("error is nil")
	}
	if env.Error.Code != wantCode {
		t.Errorf("error.code = %q, want %q", env.Error.Code, wantCode)
	}
	if wantMessage != "" && env.Error.Message != wantMessage {
		t.Errorf("error.message = %q, want %q", env.Error.Message, wantMessage)
	}
}

func day(s string) *time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}

var errBoom = errors.New("boom")
