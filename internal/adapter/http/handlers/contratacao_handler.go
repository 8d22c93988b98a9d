package handlers

import (
	"errors"
	"net/http"

	request "seguradora_xpto/internal/adapter/http/dto/request"
	response "seguradora_xpto/internal/adapter/http/dto/response"
	"seguradora_xpto/internal/domain/entities"
	"seguradora_xpto/internal/usecase"
	"seguradora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContratacaoPayload = pkg.NewDomainErrorSimple("INVALID_CONTRATACAO_INPUT", "Invalid contratacao payload", http.StatusBadRequest)

// ContratacaoHandler handles HTTP requests of the contracting service.
type ContratacaoHandler struct {
	usecase usecase.IPolicyUseCase
}

func NewContratacaoHandler(uc usecase.IPolicyUseCase) *ContratacaoHandler {
	return &ContratacaoHandler{usecase: uc}
}

// ContractProposta godoc
// @Summary      Contract an approved proposal into a policy
// @Tags         contratacoes
// @Accept       json
// @Produce      json
// @Param        contratacao body request.ContratarPropostaRequest true "Contracting data"
// @Success      201 {object} response.ContratacaoResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /v1/contratacoes [post]
func (h *ContratacaoHandler) ContractProposta(c *gin.Context) {
	var payload request.ContratarPropostaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContratacaoPayload.HTTPStatus, errInvalidContratacaoPayload.ToHTTPError())
		return
	}

	policy, err := h.usecase.Contract(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapContratacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPolicy(policy))
}

// ListContratacoes godoc
// @Summary      List contracted policies
// @Tags         contratacoes
// @Produce      json
// @Success      200 {array} response.ContratacaoResponse
// @Router       /v1/contratacoes [get]
func (h *ContratacaoHandler) ListContratacoes(c *gin.Context) {
	policies, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapContratacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicies(policies))
}

// GetContratacao godoc
// @Summary      Get a policy by id
// @Tags         contratacoes
// @Produce      json
// @Param        id path string true "Policy id"
// @Success      200 {object} response.ContratacaoResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /v1/contratacoes/{id} [get]
func (h *ContratacaoHandler) GetContratacao(c *gin.Context) {
	policy, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContratacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicy(policy))
}

func mapContratacaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPolicyID),
		errors.Is(err, entities.ErrPolicyProposalIDRequired),
		errors.Is(err, entities.ErrInvalidCoveragePeriod),
		errors.Is(err, entities.ErrCoveragePeriodInPast),
		errors.Is(err, entities.ErrInvalidPremium):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyNotFound), errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPolicyAlreadyExists):
		return pkg.NewDomainErrorSimple("PROPOSTA_ALREADY_CONTRACTED", "Proposta already contracted", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalNotApproved):
		return pkg.NewDomainErrorSimple("PROPOSTA_NOT_APPROVED", "Proposta is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPropostaServiceUnavailable):
		return pkg.NewDomainErrorSimple("PROPOSTA_SERVICE_UNAVAILABLE", "Proposta service unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
