package customorder

import (
	"errors"
	"net/http"

	"github.com/aman52kwah/kaynetartsphere/internal/pkg/apperror"
	"github.com/aman52kwah/kaynetartsphere/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) userID(c *gin.Context) string {
	v, _ := c.Get("user_id_validated")
	id, _ := v.(string)
	return id
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var stepErr *StepValidationError
	if errors.As(err, &stepErr) {
		response.Error(c, http.StatusUnprocessableEntity, apperror.CodeValidation,
			"Please fix the highlighted fields", stepErr.Fields)
		return
	}

	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) Get(c *gin.Context) {
	res, err := h.service.Get(c.Request.Context(), h.userID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Advance(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
		return
	}

	res, err := h.service.Advance(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Back(c *gin.Context) {
	res, err := h.service.Back(c.Request.Context(), h.userID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) UploadReferenceImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		// The reference image is optional, an empty upload just echoes
		// the draft back.
		res, err := h.service.Get(c.Request.Context(), h.userID(c))
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, res, nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Failed to open uploaded file", err.Error())
		return
	}
	defer file.Close()

	res, err := h.service.UploadReferenceImage(c.Request.Context(), h.userID(c), file, fileHeader.Filename)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Discard(c *gin.Context) {
	if err := h.service.Discard(c.Request.Context(), h.userID(c)); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, nil)
}
