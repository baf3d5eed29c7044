package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbooks/internal/domain"
	"gstbooks/internal/port"
	"gstbooks/internal/service"
)

// DocumentHandler handles document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

type updateStatusRequest struct {
	Status domain.DocumentStatus `json:"status" binding:"required"`
}

// Create handles POST /api/v1/documents
// @Summary      Create document
// @Description  Creates a document; all amounts are recomputed server-side from the submitted lines
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        input body service.DocumentInput true "Document fields"
// @Success      201 {object} APIResponse{data=domain.Document}
// @Failure      400 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Security     BearerAuth
// @Router       /documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.DocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), input, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// List handles GET /api/v1/documents
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Param        type query string false "Document type filter"
// @Param        status query string false "Status filter"
// @Param        customer_id query string false "Customer UUID filter"
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(50)
// @Success      200 {object} APIResponse{data=[]domain.Document,meta=PagMeta}
// @Security     BearerAuth
// @Router       /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	filter, err := parseDocumentFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	docs, total, err := h.documentService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/documents/:id
// @Summary      Get document by ID
// @Description  Returns the document with its line items
// @Tags         documents
// @Produce      json
// @Param        id path string true "Document UUID"
// @Success      200 {object} APIResponse{data=domain.Document}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document id")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// UpdateStatus handles PATCH /api/v1/documents/:id/status
// @Summary      Update document status
// @Description  Moves a document along draft, issued, paid, void
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id path string true "Document UUID"
// @Param        input body updateStatusRequest true "New status"
// @Success      200 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /documents/{id}/status [patch]
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document id")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.documentService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "status updated"})
}

// Delete handles DELETE /api/v1/documents/:id
// @Summary      Delete draft document
// @Description  Only drafts can be deleted; issued documents are voided instead
// @Tags         documents
// @Produce      json
// @Param        id path string true "Document UUID"
// @Success      200 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document id")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "document deleted"})
}

func parseDocumentFilter(c *gin.Context) (port.DocumentFilter, error) {
	var filter port.DocumentFilter

	if t := c.Query("type"); t != "" {
		filter.Type = domain.DocumentType(t)
	}
	if s := c.Query("status"); s != "" {
		filter.Status = domain.DocumentStatus(s)
	}
	if cid := c.Query("customer_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return filter, err
		}
		filter.CustomerID = id
	}
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	return filter, nil
}
