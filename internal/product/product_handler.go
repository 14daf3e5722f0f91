package product

import (
	"mime/multipart"
	"net/http"
	"strconv"

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

func (h *Handler) List(c *gin.Context) {
	res, err := h.service.List(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// Create accepts multipart form data so the admin page can attach a
// product image in the same request.
func (h *Handler) Create(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid multipart form", err.Error())
		return
	}

	stock, _ := strconv.Atoi(c.PostForm("stock"))
	req := CreateProductRequest{
		CategoryID:  c.PostForm("categoryId"),
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Stock:       stock,
	}
	if req.Name == "" || req.Price == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Name and price are required", nil)
		return
	}

	file, filename, ok := h.formImage(c)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	res, err := h.service.Create(c.Request.Context(), req, file, filename)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid multipart form", err.Error())
		return
	}

	stock, _ := strconv.Atoi(c.PostForm("stock"))
	req := UpdateProductRequest{
		CategoryID:  c.PostForm("categoryId"),
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Stock:       stock,
	}
	if req.Name == "" || req.Price == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Name and price are required", nil)
		return
	}

	file, filename, ok := h.formImage(c)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	res, err := h.service.Update(c.Request.Context(), c.Param("id"), req, file, filename)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, nil, nil)
}

// formImage reads the optional "image" file field. The third return value
// is false when an error response has already been written.
func (h *Handler) formImage(c *gin.Context) (multipart.File, string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return nil, "", true
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Failed to open uploaded file", err.Error())
		return nil, "", false
	}
	return file, fileHeader.Filename, true
}
