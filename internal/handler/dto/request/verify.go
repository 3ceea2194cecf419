package request

type VerifyRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type VerifyQRRequest struct {
	QRData string `json:"qrData" binding:"required"`
}
