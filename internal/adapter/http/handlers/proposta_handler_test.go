package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"seguradora_xpto/internal/adapter/http/handlers/mocks"
	"seguradora_xpto/internal/domain/entities"
	"seguradora_xpto/internal/domain/valueobjects"
	"seguradora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProposal(t *testing.T) entities.Proposal {
	t.Helper()
	proposal, err := entities.NewProposal("Maria Souza", "123.456.789-09", "Vida", 100000, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return proposal
}

func TestPropostaHandler_CreateProposta(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		r := gin.New()
		r.POST("/v1/propostas", h.CreateProposta)

		req := httptest.NewRequest(http.MethodPost, "/v1/propostas", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid cpf maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, valueobjects.ErrCPFInvalid)

		r := gin.New()
		r.POST("/v1/propostas", h.CreateProposta)

		body := `{"clientName":"Maria Souza","identityNumber":"11111111111","category":"Vida","coverageAmount":100000,"premiumAmount":500}`
		req := httptest.NewRequest(http.MethodPost, "/v1/propostas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if resp["code"] != "INVALID_CPF" {
			t.Fatalf("unexpected error code: %s", resp["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		proposal := newProposal(t)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateProposalInput{
			ClientName:     "Maria Souza",
			IdentityNumber: "123.456.789-09",
			Category:       "Vida",
			CoverageAmount: 100000,
			PremiumAmount:  500,
		}).Return(proposal, nil)

		r := gin.New()
		r.POST("/v1/propostas", h.CreateProposta)

		body := `{"clientName":"Maria Souza","identityNumber":"123.456.789-09","category":"Vida","coverageAmount":100000,"premiumAmount":500}`
		req := httptest.NewRequest(http.MethodPost, "/v1/propostas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["identityNumber"] != "12345678909" {
			t.Fatalf("expected canonical cpf, got %v", resp["identityNumber"])
		}
		if resp["status"] != float64(entities.ProposalStatusEmAnalise) {
			t.Fatalf("unexpected status: %v", resp["status"])
		}
	})
}

func TestPropostaHandler_ListPropostas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		r := gin.New()
		r.GET("/v1/propostas", h.ListPropostas)

		req := httptest.NewRequest(http.MethodGet, "/v1/propostas?status=9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		proposal := newProposal(t)
		status := entities.ProposalStatusEmAnalise
		uc.EXPECT().List(gomock.Any(), &status).Return([]entities.Proposal{proposal}, nil)

		r := gin.New()
		r.GET("/v1/propostas", h.ListPropostas)

		req := httptest.NewRequest(http.MethodGet, "/v1/propostas?status=1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 {
			t.Fatalf("expected 1 proposta, got %d", len(resp))
		}
	})

	t.Run("lists all without filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		uc.EXPECT().List(gomock.Any(), (*entities.ProposalStatus)(nil)).Return(nil, nil)

		r := gin.New()
		r.GET("/v1/propostas", h.ListPropostas)

		req := httptest.NewRequest(http.MethodGet, "/v1/propostas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPropostaHandler_GetProposta(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		r := gin.New()
		r.GET("/v1/propostas/:id", h.GetProposta)

		req := httptest.NewRequest(http.MethodGet, "/v1/propostas/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		proposal := newProposal(t)
		uc.EXPECT().GetByID(gomock.Any(), proposal.ID()).Return(proposal, nil)

		r := gin.New()
		r.GET("/v1/propostas/:id", h.GetProposta)

		req := httptest.NewRequest(http.MethodGet, "/v1/propostas/"+proposal.ID(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPropostaHandler_ChangePropostaStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		r := gin.New()
		r.PATCH("/v1/propostas/:id/status", h.ChangePropostaStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/propostas/prop-1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("terminal proposta maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		uc.EXPECT().ChangeStatus(gomock.Any(), "prop-1", entities.ProposalStatusAprovada).
			Return(entities.Proposal{}, entities.ErrInvalidStatusTransition)

		r := gin.New()
		r.PATCH("/v1/propostas/:id/status", h.ChangePropostaStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/propostas/prop-1/status", bytes.NewBufferString(`{"newStatus":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		uc.EXPECT().ChangeStatus(gomock.Any(), "prop-1", entities.ProposalStatusAprovada).
			Return(entities.Proposal{}, errors.New("dynamodb unavailable"))

		r := gin.New()
		r.PATCH("/v1/propostas/:id/status", h.ChangePropostaStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/propostas/prop-1/status", bytes.NewBufferString(`{"newStatus":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewPropostaHandler(uc)

		proposal := newProposal(t)
		if err := proposal.ChangeStatus(entities.ProposalStatusAprovada); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.EXPECT().ChangeStatus(gomock.Any(), proposal.ID(), entities.ProposalStatusAprovada).Return(proposal, nil)

		r := gin.New()
		r.PATCH("/v1/propostas/:id/status", h.ChangePropostaStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/propostas/"+proposal.ID()+"/status", bytes.NewBufferString(`{"newStatus":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != float64(entities.ProposalStatusAprovada) {
			t.Fatalf("unexpected status: %v", resp["status"])
		}
	})
}
