// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package gemini

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

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(
		Config{BaseURL: server.URL},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return client, server
}

func TestClient_GenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateContentRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": "Fresh bread! 🍞"}}}},
			},
		})
	})

	text, err := client.GenerateText(context.Background(), "api-key-123", "write a post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Fresh bread! 🍞" {
		t.Errorf("unexpected text: %q", text)
	}
	if gotPath != "/v1beta/models/gemini-1.5-flash:generateContent" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotKey != "api-key-123" {
		t.Errorf("API key not passed as query parameter, got %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "write a post" {
		t.Errorf("prompt not carried in request body: %+v", gotBody)
	}
}

func TestClient_GenerateText_NoCandidates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	})

	_, err := client.GenerateText(context.Background(), "k", "p")
	if err == nil {
		t.Fatal("expected error for empty candidate list")
	}
}

func TestClient_GenerateText_UpstreamErrorDetail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "API key not valid", "status": "INVALID_ARGUMENT"},
		})
	})

	_, err := client.GenerateText(context.Background(), "bad-key", "p")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("upstream detail not propagated: %v", err)
	}
}

func TestClient_GenerateText_TransportErrorOmitsAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(
		Config{BaseURL: server.URL},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	const apiKey = "AIzaSy-super-secret-key"
	_, err := client.GenerateText(context.Background(), apiKey, "p")
	if err == nil {
		t.Fatal("expected transport error against closed server")
	}
	if strings.Contains(err.Error(), apiKey) {
		t.Errorf("API key leaked in error text: %v", err)
	}
	if strings.Contains(err.Error(), "key=") {
		t.Errorf("request URL leaked in error text: %v", err)
	}
}

func TestClient_GenerateImage(t *testing.T) {
	var gotPath string
	var gotBody predictRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"predictions": []map[string]string{{"bytesBase64Encoded": "AAA="}},
		})
	})

	image, err := client.GenerateImage(context.Background(), "k", "a golden loaf", 1, "1:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if image != "AAA=" {
		t.Errorf("unexpected image payload: %q", image)
	}
	if gotPath != "/v1beta/models/imagen-3.0-generate-001:predict" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotBody.Parameters.SampleCount != 1 || gotBody.Parameters.AspectRatio != "1:1" {
		t.Errorf("unexpected parameters: %+v", gotBody.Parameters)
	}
	if len(gotBody.Instances) != 1 || gotBody.Instances[0].Prompt != "a golden loaf" {
		t.Errorf("prompt not carried in instances: %+v", gotBody.Instances)
	}
}

func TestClient_GenerateImage_NoPredictions(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"predictions": []interface{}{}})
	})

	_, err := client.GenerateImage(context.Background(), "k", "p", 1, "1:1")
	if err == nil {
		t.Fatal("expected error for zero predictions")
	}
	if !strings.Contains(err.Error(), "no predictions") {
		t.Errorf("unexpected error: %v", err)
	}
}
