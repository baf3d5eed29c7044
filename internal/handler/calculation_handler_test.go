package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbooks/internal/config"
	"gstbooks/internal/handler"
	"gstbooks/internal/service"
	"gstbooks/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCalculationHandler() *handler.CalculationHandler {
	docSvc := service.NewDocumentService(
		new(mocks.MockDocumentRepo),
		new(mocks.MockCustomerRepo),
		new(mocks.MockEmailSender),
		config.SellerConfig{StateCode: "27"},
	)
	return handler.NewCalculationHandler(docSvc)
}

func postJSON(t *testing.T, h gin.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h(c)
	return w
}

func TestCalculationHandler_Preview(t *testing.T) {
	h := newCalculationHandler()

	w := postJSON(t, h.Preview, "/api/v1/calculations/preview", gin.H{
		"place_of_supply": "27",
		"lines": []gin.H{
			{
				"description":      "Widgets",
				"quantity":         "10",
				"rate":             "100",
				"discount_type":    "percentage",
				"discount_value":   "10",
				"tax_rate_percent": "18",
			},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Data    service.TotalsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "intra_state", string(resp.Data.TaxRegime))
	assert.Equal(t, "900", resp.Data.SubtotalTaxable.String())
	assert.Equal(t, "81", resp.Data.CGST.String())
	assert.Equal(t, "81", resp.Data.SGST.String())
	assert.Equal(t, "1062", resp.Data.GrandTotal.String())
}

func TestCalculationHandler_Preview_NoLinesRejected(t *testing.T) {
	h := newCalculationHandler()

	w := postJSON(t, h.Preview, "/api/v1/calculations/preview", gin.H{
		"place_of_supply": "27",
		"lines":           []gin.H{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculationHandler_AmountInWords(t *testing.T) {
	h := newCalculationHandler()

	w := postJSON(t, h.AmountInWords, "/api/v1/calculations/amount-in-words", gin.H{
		"amount": "1062.50",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Words string `json:"words"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Indian Rupee One Thousand Sixty Two and Fifty Paise Only", resp.Data.Words)
}

func TestCalculationHandler_AmountInWords_NegativeRejected(t *testing.T) {
	h := newCalculationHandler()

	w := postJSON(t, h.AmountInWords, "/api/v1/calculations/amount-in-words", gin.H{
		"amount": "-5",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculationHandler_ValidateIdentifiers(t *testing.T) {
	h := newCalculationHandler()

	w := postJSON(t, h.ValidateIdentifiers, "/api/v1/calculations/validate-identifiers", gin.H{
		"gstin":           "27AAGCA4900Q1ZE",
		"pan":             "AAGCA4900Q",
		"place_of_supply": "29",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			GSTIN   struct{ Valid bool } `json:"gstin"`
			PAN     struct{ Valid bool } `json:"pan"`
			Warning string               `json:"warning"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.GSTIN.Valid)
	assert.True(t, resp.Data.PAN.Valid)
	assert.Contains(t, resp.Data.Warning, "Maharashtra")
	assert.Contains(t, resp.Data.Warning, "Karnataka")
}

func TestCalculationHandler_ValidateIdentifiers_BadGSTIN(t *testing.T) {
	h := newCalculationHandler()

	w := postJSON(t, h.ValidateIdentifiers, "/api/v1/calculations/validate-identifiers", gin.H{
		"gstin": "INVALID",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			GSTIN struct {
				Valid   bool   `json:"valid"`
				Message string `json:"message"`
			} `json:"gstin"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.GSTIN.Valid)
	assert.NotEmpty(t, resp.Data.GSTIN.Message)
}
