package request

import (
	"time"

	"medverify/internal/usecase"
)

type RegisterMedicineRequest struct {
	Name            string    `json:"name" binding:"required"`
	Manufacturer    string    `json:"manufacturer" binding:"required"`
	BatchNumber     string    `json:"batchNumber" binding:"required"`
	ManufactureDate time.Time `json:"manufactureDate" binding:"required"`
	ExpiryDate      time.Time `json:"expiryDate" binding:"required"`
}

func (r RegisterMedicineRequest) ToCommand() usecase.RegisterMedicineCommand {
	return usecase.RegisterMedicineCommand{
		Name:            r.Name,
		Manufacturer:    r.Manufacturer,
		BatchNumber:     r.BatchNumber,
		ManufactureDate: r.ManufactureDate,
		ExpiryDate:      r.ExpiryDate,
	}
}
