package api

import (
	"errors"
	"net/http"

	reqdto "medverify/internal/handler/dto/request"
	resdto "medverify/internal/handler/dto/response"
	"medverify/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VerifyHandler struct {
	verifier usecase.Verifier
	stats    usecase.StatsQueries
}

func NewVerifyHandler(verifier usecase.Verifier, stats usecase.StatsQueries) *VerifyHandler {
	return &VerifyHandler{
		verifier: verifier,
		stats:    stats,
	}
}

// @Summary Verify medicine by product ID
// @Description Check a product identifier against the registry and the ledger
// @Tags verify
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyRequest true "Verification request"
// @Success 200 {object} resdto.VerifyResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /verify [post]
func (h *VerifyHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.verifier.VerifyByProductID(c.Request.Context(), req.ProductID, c.ClientIP())
	if err != nil {
		// An unknown product is a NOT_FOUND verdict, never an error; only
		// infrastructure failures reach this branch.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerifyResult(result))
}

// @Summary Verify medicine by QR code
// @Description Validate and consume a single-use QR token, then verify the product
// @Tags verify
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyQRRequest true "Scanned QR data"
// @Success 200 {object} resdto.VerifyResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /verify/qr [post]
func (h *VerifyHandler) VerifyQR(c *gin.Context) {
	var req reqdto.VerifyQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.verifier.VerifyByQR(c.Request.Context(), req.QRData, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidQRFormat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid QR code format",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerifyResult(result))
}

// @Summary Verification statistics
// @Description Aggregate counters of verification attempts
// @Tags verify
// @Produce json
// @Success 200 {object} resdto.VerificationStatsResponse
// @Failure 500 {object} map[string]string
// @Router /verify/logs [get]
func (h *VerifyHandler) Logs(c *gin.Context) {
	stats, err := h.stats.VerificationStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStats(stats))
}
