package handler

import (
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/models"
	"society-admin-svc/internal/service"
	"society-admin-svc/pkg/logger"
	"society-admin-svc/pkg/utils"
)

// MaxUploadMemory is the multipart memory limit; larger parts spill to temp files
const MaxUploadMemory = 32 << 20

// ResourceHandler serves the CRUD routes of one resource
type ResourceHandler[T any, I any] struct {
	name       string
	title      string
	service    service.ResourceService[T, I]
	fileFields []string
	logger     *logger.Logger
}

// NewResourceHandler creates a handler for a resource. fileFields names the multipart
// fields forwarded to the API as files.
func NewResourceHandler[T any, I any](name string, svc service.ResourceService[T, I], logger *logger.Logger, fileFields ...string) *ResourceHandler[T, I] {
	return &ResourceHandler[T, I]{
		name:       name,
		title:      strings.ToUpper(name[:1]) + name[1:],
		service:    svc,
		fileFields: fileFields,
		logger:     logger,
	}
}

// Register mounts the CRUD routes on group
func (h *ResourceHandler[T, I]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.PATCH("/:id", h.Patch)
	group.DELETE("/:id", h.Delete)
}

// List handles GET /
func (h *ResourceHandler[T, I]) List(c *gin.Context) {
	params := listParamsFromQuery(c)

	page, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list "+h.name)
		return
	}

	pageNum, limit := page.Pagination.Page, page.Pagination.Limit
	if pageNum == 0 {
		pageNum = params.Page
	}
	if limit == 0 {
		limit = params.Limit
	}
	utils.PaginatedSuccessResponse(c, h.title+" list retrieved successfully", page.Items, pageNum, limit, page.Pagination.Total)
}

// Get handles GET /:id
func (h *ResourceHandler[T, I]) Get(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ID", err)
		return
	}

	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get "+h.name)
		return
	}

	utils.SuccessResponse(c, h.title+" retrieved successfully", record)
}

// Create handles POST /
func (h *ResourceHandler[T, I]) Create(c *gin.Context) {
	input, files, cleanup, ok := h.bind(c)
	if !ok {
		return
	}
	defer cleanup()

	record, err := h.service.Create(c.Request.Context(), input, files)
	if err != nil {
		respondError(c, err, "Failed to create "+h.name)
		return
	}

	utils.CreatedResponse(c, h.title+" created successfully", record)
}

// Update handles PUT /:id
func (h *ResourceHandler[T, I]) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ID", err)
		return
	}

	input, files, cleanup, ok := h.bind(c)
	if !ok {
		return
	}
	defer cleanup()

	record, err := h.service.Update(c.Request.Context(), id, input, files)
	if err != nil {
		respondError(c, err, "Failed to update "+h.name)
		return
	}

	utils.SuccessResponse(c, h.title+" updated successfully", record)
}

// Patch handles PATCH /:id with a JSON object of the fields to change
func (h *ResourceHandler[T, I]) Patch(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ID", err)
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	record, err := h.service.Patch(c.Request.Context(), id, fields)
	if err != nil {
		respondError(c, err, "Failed to update "+h.name)
		return
	}

	utils.SuccessResponse(c, h.title+" updated successfully", record)
}

// Delete handles DELETE /:id
func (h *ResourceHandler[T, I]) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ID", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete "+h.name)
		return
	}

	utils.SuccessResponse(c, h.title+" deleted successfully", nil)
}

// bind decodes a JSON or multipart body into I and opens the uploaded files.
// cleanup closes the files and must be called once the request is sent.
func (h *ResourceHandler[T, I]) bind(c *gin.Context) (*I, []apiclient.File, func(), bool) {
	var input I
	if err := c.ShouldBind(&input); err != nil {
		h.logger.WithError(err).WithField("resource", h.name).Warn("Invalid request body")
		utils.BadRequestResponse(c, bindingMessage(err), err)
		return nil, nil, nil, false
	}

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return &input, nil, func() {}, true
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form", err)
		return nil, nil, nil, false
	}

	files, closers, err := openFormFiles(form, h.fileFields)
	cleanup := func() {
		for _, f := range closers {
			f.Close()
		}
	}
	if err != nil {
		cleanup()
		utils.BadRequestResponse(c, "Failed to read uploaded file", err)
		return nil, nil, nil, false
	}
	return &input, files, cleanup, true
}

func openFormFiles(form *multipart.Form, fields []string) ([]apiclient.File, []multipart.File, error) {
	var (
		files   []apiclient.File
		closers []multipart.File
	)
	for _, field := range fields {
		for _, header := range form.File[field] {
			f, err := header.Open()
			if err != nil {
				return nil, closers, err
			}
			closers = append(closers, f)
			files = append(files, apiclient.File{
				Field:       field,
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Reader:      f,
			})
		}
	}
	return files, closers, nil
}

// listParamsFromQuery reads pagination, search, sort and the remaining query keys as filters
func listParamsFromQuery(c *gin.Context) models.ListParams {
	page, limit := utils.GetPaginationParams(c)
	params := models.ListParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
	}

	for key, values := range c.Request.URL.Query() {
		switch key {
		case "page", "limit", "search", "sort", "order":
			continue
		}
		if len(values) > 0 && values[0] != "" {
			params = params.WithFilter(key, values[0])
		}
	}
	return params
}
