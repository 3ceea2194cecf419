package response

import (
	"medverify/internal/domain/verdict"
	"medverify/internal/usecase"
)

type VerifyResponse struct {
	IsValid            bool               `json:"isValid"`
	Status             verdict.Status     `json:"status"`
	Confidence         verdict.Confidence `json:"confidence"`
	IsExpired          bool               `json:"isExpired"`
	Medicine           *MedicineResponse  `json:"medicine"`
	Message            string             `json:"message"`
	BlockchainVerified bool               `json:"blockchainVerified"`
	Checks             verdict.Checks     `json:"checks"`
	Warnings           []string           `json:"warnings"`
}

func FromVerifyResult(res *usecase.Result) *VerifyResponse {
	var med *MedicineResponse
	if res.Medicine != nil {
		med = FromMedicine(res.Medicine)
	}

	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &VerifyResponse{
		IsValid:            res.IsValid(),
		Status:             res.Status,
		Confidence:         res.Confidence,
		IsExpired:          res.IsExpired,
		Medicine:           med,
		Message:            res.Message,
		BlockchainVerified: res.BlockchainVerified,
		Checks:             res.Checks,
		Warnings:           warnings,
	}
}

type VerificationStatsResponse struct {
	Total      int64 `json:"total"`
	Successful int64 `json:"successful"`
	Failed     int64 `json:"failed"`
}

func FromStats(s usecase.Stats) *VerificationStatsResponse {
	return &VerificationStatsResponse{
		Total:      s.Total,
		Successful: s.Successful,
		Failed:     s.Failed,
	}
}
