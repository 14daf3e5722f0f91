package checkout

import (
	"errors"
	"net/http"

	"github.com/aman52kwah/kaynetartsphere/internal/customorder"
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
	var stepErr *customorder.StepValidationError
	if errors.As(err, &stepErr) {
		response.Error(c, http.StatusUnprocessableEntity, apperror.CodeValidation,
			"Please fix the highlighted fields", stepErr.Fields)
		return
	}

	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) Preview(c *gin.Context) {
	res, err := h.service.Preview(c.Request.Context(), h.userID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
		return
	}

	res, err := h.service.PrepareAndSubmit(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
		return
	}

	res, err := h.service.PlaceRegularOrder(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) PlaceCustomOrder(c *gin.Context) {
	var req PlaceCustomOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
		return
	}

	res, err := h.service.PlaceCustomOrder(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}
