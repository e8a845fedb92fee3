// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package instagram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/monitoring"
	"github.com/lnrlnrleite/social/internal/tracing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(
		Config{BaseURL: server.URL},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestClient_CreateMediaContainer(t *testing.T) {
	var gotPath string
	var gotForm map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = r.ParseForm()
		gotForm = r.PostForm

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "17895000000000000"})
	})

	id, err := client.CreateMediaContainer(context.Background(), "biz-1", "token-1", "https://cdn.example.com/a.jpg", "Buy our coffee! ☕")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "17895000000000000" {
		t.Errorf("unexpected creation id: %q", id)
	}
	if gotPath != "/biz-1/media" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	for key, want := range map[string]string{
		"image_url":    "https://cdn.example.com/a.jpg",
		"caption":      "Buy our coffee! ☕",
		"access_token": "token-1",
	} {
		if got := gotForm[key]; len(got) != 1 || got[0] != want {
			t.Errorf("form field %s = %v, want %q", key, got, want)
		}
	}
}

func TestClient_CreateMediaContainer_MissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	})

	_, err := client.CreateMediaContainer(context.Background(), "biz-1", "t", "https://x/i.jpg", "c")
	if err == nil {
		t.Fatal("expected error when response carries no id")
	}
	if !strings.Contains(err.Error(), "no id") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestClient_PublishMediaContainer(t *testing.T) {
	var gotPath string
	var gotForm map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = r.ParseForm()
		gotForm = r.PostForm

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "post-42"})
	})

	id, err := client.PublishMediaContainer(context.Background(), "biz-1", "token-1", "17895000000000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "post-42" {
		t.Errorf("unexpected post id: %q", id)
	}
	if gotPath != "/biz-1/media_publish" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if got := gotForm["creation_id"]; len(got) != 1 || got[0] != "17895000000000000" {
		t.Errorf("creation_id = %v, want the exact container id", got)
	}
}

func TestClient_GraphErrorDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": "Invalid OAuth access token.",
				"type":    "OAuthException",
				"code":    190,
			},
		})
	})

	_, err := client.PublishMediaContainer(context.Background(), "biz-1", "expired", "c-1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Invalid OAuth access token.") {
		t.Errorf("upstream detail not propagated: %v", err)
	}
}
