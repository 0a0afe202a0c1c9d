package handlers

import "github.com/go-playground/validator/v10"

// validate один инстанс валидатора на весь API слой, он потокобезопасен
var validate = validator.New()

// Validate проверяет структуру по validate-тегам полей
func Validate(dst interface{}) error {
	return validate.Struct(dst)
}
