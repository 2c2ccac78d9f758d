package request

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
)

// RegisterValidators installs custom binding rules on gin's validator engine.
// Call once during startup, before any request is bound.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("paymentmode", func(fl validator.FieldLevel) bool {
		return enum.IsValidPaymentMode(fl.Field().String())
	})
}
