package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "seguradora_xpto/internal/adapter/http/dto/request"
	response "seguradora_xpto/internal/adapter/http/dto/response"
	"seguradora_xpto/internal/domain/entities"
	"seguradora_xpto/internal/domain/valueobjects"
	"seguradora_xpto/internal/usecase"
	"seguradora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPropostaPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSTA_INPUT", "Invalid proposta payload", http.StatusBadRequest)
	errInvalidStatusFilter    = pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Invalid status filter", http.StatusBadRequest)
)

// PropostaHandler handles HTTP requests of the proposal service.
type PropostaHandler struct {
	usecase usecase.IProposalUseCase
}

func NewPropostaHandler(uc usecase.IProposalUseCase) *PropostaHandler {
	return &PropostaHandler{usecase: uc}
}

// CreateProposta godoc
// @Summary      Register an insurance proposal
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Param        proposta body request.CriarPropostaRequest true "Proposal data"
// @Success      201 {object} response.PropostaResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /v1/propostas [post]
func (h *PropostaHandler) CreateProposta(c *gin.Context) {
	var payload request.CriarPropostaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropostaPayload.HTTPStatus, errInvalidPropostaPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapPropostaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

// ListPropostas godoc
// @Summary      List proposals, optionally filtered by status
// @Tags         propostas
// @Produce      json
// @Param        status query int false "Status filter (1 em analise, 2 aprovada, 3 rejeitada)"
// @Success      200 {array} response.PropostaResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /v1/propostas [get]
func (h *PropostaHandler) ListPropostas(c *gin.Context) {
	var statusFilter *entities.ProposalStatus
	if raw := c.Query("status"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidStatusFilter.HTTPStatus, errInvalidStatusFilter.ToHTTPError())
			return
		}
		status := entities.ProposalStatus(value)
		if !status.IsValid() {
			c.JSON(errInvalidStatusFilter.HTTPStatus, errInvalidStatusFilter.ToHTTPError())
			return
		}
		statusFilter = &status
	}

	proposals, err := h.usecase.List(c.Request.Context(), statusFilter)
	if err != nil {
		appErr := mapPropostaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

// GetProposta godoc
// @Summary      Get a proposal by id
// @Tags         propostas
// @Produce      json
// @Param        id path string true "Proposal id"
// @Success      200 {object} response.PropostaResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /v1/propostas/{id} [get]
func (h *PropostaHandler) GetProposta(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPropostaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// ChangePropostaStatus godoc
// @Summary      Approve or reject a proposal under review
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Param        id path string true "Proposal id"
// @Param        status body request.AlterarStatusRequest true "Target status"
// @Success      200 {object} response.PropostaResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /v1/propostas/{id}/status [patch]
func (h *PropostaHandler) ChangePropostaStatus(c *gin.Context) {
	var payload request.AlterarStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropostaPayload.HTTPStatus, errInvalidPropostaPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ToStatus())
	if err != nil {
		appErr := mapPropostaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapPropostaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, valueobjects.ErrCPFRequired), errors.Is(err, valueobjects.ErrCPFInvalid):
		return pkg.NewDomainErrorSimple("INVALID_CPF", "Invalid CPF", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidClientName),
		errors.Is(err, entities.ErrInvalidInsuranceType),
		errors.Is(err, valueobjects.ErrNegativeAmount),
		errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidProposalStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSTA_NOT_FOUND", "Proposta not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Proposta status can no longer change", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
