package proposals

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"seguradora_xpto/internal/domain/entities"
)

func TestNewClient(t *testing.T) {
	t.Run("should fail when base url is empty", func(t *testing.T) {
		if _, err := NewClient("   "); err != ErrMissingBaseURL {
			t.Fatalf("expected ErrMissingBaseURL, got %v", err)
		}
	})

	t.Run("should trim trailing slash", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.baseURL != "http://localhost:8080" {
			t.Fatalf("unexpected base url: %s", client.baseURL)
		}
	})
}

func TestClientGetProposal(t *testing.T) {
	t.Run("should decode an approved proposal", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/propostas/prop-1" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": "prop-1",
				"clientName": "Maria Souza",
				"identityNumber": "12345678909",
				"category": "Vida",
				"coverageAmount": 100000,
				"premiumAmount": 500,
				"status": 2,
				"createdAt": "2024-01-10T12:00:00Z"
			}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		summary, err := client.GetProposal(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.ID != "prop-1" {
			t.Fatalf("unexpected id: %s", summary.ID)
		}
		if summary.Status != entities.ProposalStatusAprovada {
			t.Fatalf("unexpected status: %d", summary.Status)
		}
		if summary.PremiumAmount != 500 {
			t.Fatalf("unexpected premium: %f", summary.PremiumAmount)
		}
	})

	t.Run("should return zero summary on 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client, _ := NewClient(server.URL)

		summary, err := client.GetProposal(context.Background(), "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.ID != "" {
			t.Fatalf("expected zero summary, got id %s", summary.ID)
		}
	})

	t.Run("should fail on server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client, _ := NewClient(server.URL)

		if _, err := client.GetProposal(context.Background(), "prop-1"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("should fail when the service is unreachable", func(t *testing.T) {
		client, _ := NewClient("http://127.0.0.1:1")

		if _, err := client.GetProposal(context.Background(), "prop-1"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
