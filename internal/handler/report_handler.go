package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gstbooks/internal/csvexport"
	"gstbooks/internal/domain"
	"gstbooks/internal/service"
)

// ReportHandler handles report export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportRegister handles GET /api/v1/reports/register
// @Summary      Export document register
// @Description  Downloads the document register as an XLSX workbook or CSV file
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        type query string false "Document type filter"
// @Param        format query string false "Export format: xlsx or csv" default(xlsx)
// @Success      200 {file} binary
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/register [get]
func (h *ReportHandler) ExportRegister(c *gin.Context) {
	var docType domain.DocumentType
	if t := c.Query("type"); t != "" {
		docType = domain.DocumentType(t)
		if !domain.ValidDocumentTypes[docType] {
			RespondError(c, http.StatusBadRequest, "INVALID_DOCUMENT_TYPE", "invalid document type filter")
			return
		}
	}

	switch c.DefaultQuery("format", "xlsx") {
	case "xlsx":
		data, err := h.reportService.ExportRegister(c.Request.Context(), docType)
		if err != nil {
			HandleError(c, err)
			return
		}
		filename := fmt.Sprintf("register-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)

	case "csv":
		data, err := h.reportService.ExportRegisterCSV(c.Request.Context(), docType)
		if err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, csvexport.BuildFilename(docType)))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)

	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be xlsx or csv")
	}
}
