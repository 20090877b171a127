// Package http provides HTTP handlers for the hash/cipher transform.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/hashcipher/internal/httputil"
	"github.com/allisson/hashcipher/internal/transform/domain"
	"github.com/allisson/hashcipher/internal/transform/http/dto"
	"github.com/allisson/hashcipher/internal/transform/service"
	transformUseCase "github.com/allisson/hashcipher/internal/transform/usecase"
	customValidation "github.com/allisson/hashcipher/internal/validation"
)

// TransformHandler handles HTTP requests for hash and cipher transforms.
type TransformHandler struct {
	transformUseCase transformUseCase.TransformUseCase
	maxInputBytes    int
	logger           *slog.Logger
}

// NewTransformHandler creates a new transform handler with required dependencies.
func NewTransformHandler(
	transformUseCase transformUseCase.TransformUseCase,
	maxInputBytes int,
	logger *slog.Logger,
) *TransformHandler {
	return &TransformHandler{
		transformUseCase: transformUseCase,
		maxInputBytes:    maxInputBytes,
		logger:           logger,
	}
}

// TransformHandler hashes or encrypts the input depending on which algorithm is set.
// POST /v1/transform - Returns 200 OK with the encoded result.
func (h *TransformHandler) TransformHandler(c *gin.Context) {
	var req dto.TransformRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(h.maxInputBytes); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	request := req.ToDomain()
	h.logger.Debug("transform request", slog.Any("request", request))

	result, err := h.transformUseCase.Transform(c.Request.Context(), request)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TransformResponse{Result: result})
}

// HashHandler hashes the input.
// POST /v1/transform/hash - Returns 200 OK with the encoded digest.
func (h *TransformHandler) HashHandler(c *gin.Context) {
	var req dto.HashRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(h.maxInputBytes); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.transformUseCase.Hash(c.Request.Context(), req.Input, req.Algorithm, req.OutputFormat)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TransformResponse{Result: result})
}

// EncryptHandler encrypts the input under a passphrase.
// POST /v1/transform/encrypt - Returns 200 OK with the encoded frame (IV, optional tag, ciphertext).
func (h *TransformHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(h.maxInputBytes); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.transformUseCase.Encrypt(
		c.Request.Context(),
		req.Input,
		req.Algorithm,
		req.CipherKey,
		req.OutputFormat,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TransformResponse{Result: result})
}

// OverviewHandler renders the display summary of a transform request without running it.
// POST /v1/transform/overview - Returns 200 OK with labelled fields; the cipher key is masked.
func (h *TransformHandler) OverviewHandler(c *gin.Context) {
	var req dto.TransformRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOverviewResponse(domain.Overview(req.ToDomain())))
}

// AlgorithmsHandler lists the documented choices and every accepted algorithm name.
// GET /v1/transform/algorithms - Returns 200 OK.
func (h *TransformHandler) AlgorithmsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MapAlgorithmsResponse(
		domain.DefaultCatalog(),
		service.DigestNames(),
		service.CipherNames(),
	))
}
