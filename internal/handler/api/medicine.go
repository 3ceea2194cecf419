package api

import (
	"errors"
	"net/http"

	"medverify/internal/domain/medicine"
	reqdto "medverify/internal/handler/dto/request"
	resdto "medverify/internal/handler/dto/response"
	"medverify/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MedicineHandler struct {
	commands usecase.MedicineCommands
	queries  usecase.MedicineQueries
}

func NewMedicineHandler(commands usecase.MedicineCommands, queries usecase.MedicineQueries) *MedicineHandler {
	return &MedicineHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Register medicine
// @Description Register a new medicine batch and attest it on the ledger
// @Tags medicines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterMedicineRequest true "Medicine details"
// @Success 201 {object} resdto.RegisterMedicineResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /medicines [post]
func (h *MedicineHandler) Register(c *gin.Context) {
	var req reqdto.RegisterMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.commands.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, medicine.ErrEmptyName),
			errors.Is(err, medicine.ErrEmptyManufacturer),
			errors.Is(err, medicine.ErrEmptyBatchNumber),
			errors.Is(err, medicine.ErrInvalidDates):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, usecase.ErrAlreadyAttested), errors.Is(err, usecase.ErrDuplicateProduct):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Product already registered",
			})
		case errors.Is(err, usecase.ErrLedgerUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Ledger unavailable, registration aborted",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp := resdto.RegisterMedicineResponse{
		Medicine:  resdto.FromMedicine(result.Medicine),
		LedgerRef: result.LedgerRef,
	}
	if result.QRPayload.Hash != "" {
		if qr, qrErr := resdto.FromQRPayload(result.QRPayload); qrErr == nil {
			resp.QR = qr
		}
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get medicine
// @Description Get a registered medicine by product ID
// @Tags medicines
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.MedicineResponse
// @Failure 404 {object} map[string]string
// @Router /medicines/{productId} [get]
func (h *MedicineHandler) GetMedicine(c *gin.Context) {
	productID := c.Param("productId")

	m, err := h.queries.GetByProductID(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRegistryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Medicine not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMedicine(m))
}

// @Summary List medicines
// @Description List registered medicines, optionally filtered by manufacturer
// @Tags medicines
// @Produce json
// @Param manufacturer query string false "Manufacturer filter"
// @Success 200 {array} resdto.MedicineResponse
// @Failure 500 {object} map[string]string
// @Router /medicines [get]
func (h *MedicineHandler) ListMedicines(c *gin.Context) {
	manufacturer := c.Query("manufacturer")

	medicines, err := h.queries.List(c.Request.Context(), manufacturer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.MedicineResponse, len(medicines))
	for i, m := range medicines {
		response[i] = resdto.FromMedicine(m)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Issue QR token
// @Description Issue a fresh single-use QR token for an existing medicine
// @Tags medicines
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 201 {object} resdto.QRTokenResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /medicines/{productId}/qr [post]
func (h *MedicineHandler) IssueQR(c *gin.Context) {
	productID := c.Param("productId")

	payload, err := h.commands.IssueQR(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRegistryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Medicine not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	qr, err := resdto.FromQRPayload(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, qr)
}
