package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"gstbooks/internal/gst"
	"gstbooks/internal/service"
)

// CalculationHandler exposes stateless calculation endpoints used by document
// entry forms. Nothing here touches the database.
type CalculationHandler struct {
	documentService service.DocumentService
}

// NewCalculationHandler creates a new CalculationHandler.
func NewCalculationHandler(documentService service.DocumentService) *CalculationHandler {
	return &CalculationHandler{documentService: documentService}
}

type amountInWordsRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type validateIdentifierRequest struct {
	GSTIN         string `json:"gstin"`
	PAN           string `json:"pan"`
	PlaceOfSupply string `json:"place_of_supply"`
}

// Preview handles POST /api/v1/calculations/preview
// @Summary      Preview document totals
// @Description  Computes per-line amounts and the tax split without persisting anything
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        input body service.PreviewInput true "Lines and document-level charges"
// @Success      200 {object} APIResponse{data=service.TotalsResult}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /calculations/preview [post]
func (h *CalculationHandler) Preview(c *gin.Context) {
	var input service.PreviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.documentService.Preview(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// AmountInWords handles POST /api/v1/calculations/amount-in-words
// @Summary      Convert an amount to Indian-numbering words
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        input body amountInWordsRequest true "Amount"
// @Success      200 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /calculations/amount-in-words [post]
func (h *CalculationHandler) AmountInWords(c *gin.Context) {
	var req amountInWordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if req.Amount.IsNegative() {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "amount must not be negative")
		return
	}

	RespondOK(c, gin.H{
		"amount": req.Amount,
		"words":  gst.AmountInWords(req.Amount),
	})
}

type estimateSplitRequest struct {
	GrandTotal decimal.Decimal `json:"grand_total" binding:"required"`
	TaxRegime  gst.TaxRegime   `json:"tax_regime" binding:"required,oneof=intra_state inter_state exempt"`
}

// EstimateSplit handles POST /api/v1/calculations/estimate-split
// @Summary      Estimate a tax breakdown from an inclusive total
// @Description  Back-computes a display-only CGST/SGST/IGST estimate assuming the standard 18 percent slab; documents with line data use the preview endpoint instead
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        input body estimateSplitRequest true "Inclusive total and regime"
// @Success      200 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /calculations/estimate-split [post]
func (h *CalculationHandler) EstimateSplit(c *gin.Context) {
	var req estimateSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	split := gst.EstimateTaxSplit(req.GrandTotal, req.TaxRegime)
	RespondOK(c, gin.H{
		"taxable_amount": split.TaxableAmount.Round(2),
		"cgst":           split.CGST.Round(2),
		"sgst":           split.SGST.Round(2),
		"igst":           split.IGST.Round(2),
	})
}

// ValidateIdentifiers handles POST /api/v1/calculations/validate-identifiers
// @Summary      Structurally validate GSTIN and PAN
// @Description  Returns per-field validity plus a state mismatch warning when the GSTIN prefix disagrees with the place of supply
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        input body validateIdentifierRequest true "Identifiers"
// @Success      200 {object} APIResponse
// @Security     BearerAuth
// @Router       /calculations/validate-identifiers [post]
func (h *CalculationHandler) ValidateIdentifiers(c *gin.Context) {
	var req validateIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	resp := gin.H{
		"gstin": gst.ValidateGSTIN(req.GSTIN),
		"pan":   gst.ValidatePAN(req.PAN),
	}
	if mismatch := gst.CheckGSTINState(req.GSTIN, req.PlaceOfSupply); mismatch != nil {
		resp["warning"] = mismatch.Warning()
	}

	RespondOK(c, resp)
}
