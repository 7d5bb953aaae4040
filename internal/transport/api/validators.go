package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

// supportedCurrencies — валюты, с которыми работает леджер. Список расширяется
// вместе с таблицей курсов провайдера.
var supportedCurrencies = map[string]struct{}{
	"USD": {},
	"EUR": {},
	"GBP": {},
	"CAD": {},
	"AUD": {},
	"JPY": {},
	"CHF": {},
	"SEK": {},
	"NZD": {},
	"MXN": {},
	"BRL": {},
	"INR": {},
}

// validateCurrencyCode проверяет, что поле - код поддерживаемой валюты.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, supported := supportedCurrencies[code]
	return supported
}

// validateSlug проверяет, что slug состоит из строчных латинских букв, цифр и
// дефисов и не начинается/заканчивается дефисом.
func validateSlug(fl validator.FieldLevel) bool {
	slug, ok := fl.Field().Interface().(string)
	if !ok || slug == "" {
		return false
	}
	if slug[0] == '-' || slug[len(slug)-1] == '-' {
		return false
	}
	for i := 0; i < len(slug); i++ {
		char := slug[i]
		isLower := char >= 'a' && char <= 'z'
		isDigit := char >= '0' && char <= '9'
		if !isLower && !isDigit && char != '-' {
			return false
		}
	}
	return true
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("currency_code", validateCurrencyCode); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	if err := v.RegisterValidation("account_slug", validateSlug); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
