package request

import (
	"regexp"

	"revenda_xpto/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var cpfDigits = regexp.MustCompile(`^[0-9]{11}$`)

// The cpf rule rejects anything that is not exactly 11 digits before a single
// byte leaves the console.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			return cpfDigits.MatchString(fl.Field().String())
		})
	}
}

// SaleCreateRequest is the payload for recording a new sale.
type SaleCreateRequest struct {
	VehicleID   string          `json:"vehicle_id" binding:"required"`
	BuyerCPF    string          `json:"buyer_cpf" binding:"required,cpf"`
	SalePrice   decimal.Decimal `json:"sale_price" binding:"required"`
	PaymentCode string          `json:"payment_code" binding:"required"`
}

func (r SaleCreateRequest) ToCommand() entities.SaleCreate {
	return entities.SaleCreate{
		VehicleID:   r.VehicleID,
		BuyerCPF:    r.BuyerCPF,
		SalePrice:   r.SalePrice,
		PaymentCode: r.PaymentCode,
	}
}

// SaleUpdateRequest carries a partial sale update; omitted fields keep their
// current upstream value.
type SaleUpdateRequest struct {
	VehicleID     *string          `json:"vehicle_id,omitempty"`
	BuyerCPF      *string          `json:"buyer_cpf,omitempty" binding:"omitempty,cpf"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	PaymentCode   *string          `json:"payment_code,omitempty"`
	PaymentStatus *string          `json:"payment_status,omitempty" binding:"omitempty,oneof=PENDING PAID CANCELLED"`
}

func (r SaleUpdateRequest) ToPatch() entities.SaleUpdate {
	patch := entities.SaleUpdate{
		VehicleID:   r.VehicleID,
		BuyerCPF:    r.BuyerCPF,
		SalePrice:   r.SalePrice,
		PaymentCode: r.PaymentCode,
	}
	if r.PaymentStatus != nil {
		status := entities.PaymentStatus(*r.PaymentStatus)
		patch.PaymentStatus = &status
	}
	return patch
}
