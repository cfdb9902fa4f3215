// Package validation содержит правила проверки входных данных перед сохранением.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/snovatour/guideshop/internal/model"
)

// ErrValidation возвращается, если входные данные не прошли проверку.
var ErrValidation = errors.New("validation failed")

var productCodeRe = regexp.MustCompile(`^[A-Z]{1,2}\d{3,4}$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator возвращает общий экземпляр валидатора с зарегистрированными доменными правилами.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		mustRegister(v, "notblank", validators.NotBlank)
		mustRegister(v, "product_code", func(fl validator.FieldLevel) bool {
			return IsValidProductCode(fl.Field().String())
		})
		mustRegister(v, "currency", func(fl validator.FieldLevel) bool {
			return IsSupportedCurrency(fl.Field().String())
		})
		mustRegister(v, "lang", func(fl validator.FieldLevel) bool {
			return IsSupportedLang(fl.Field().String())
		})
		mustRegister(v, "server_path", func(fl validator.FieldLevel) bool {
			return IsServerPath(fl.Field().String())
		})
		mustRegister(v, "file_link", func(fl validator.FieldLevel) bool {
			return IsFileLink(fl.Field().String())
		})

		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Struct проверяет структуру и сводит ошибки полей в одну ErrValidation.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe.Field(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

// Var проверяет одиночное значение, например параметр пути запроса.
func Var(field string, value any, tag string) error {
	err := Validator().Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, describe(field, fieldErrs[0].Tag(), fieldErrs[0].Param()))
	}
	return fmt.Errorf("%w: %s", ErrValidation, err.Error())
}

func describe(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "product_code":
		return field + " must be 1-2 capital letters followed by 3-4 digits"
	case "currency":
		return field + " must be one of " + joinCurrencies()
	case "lang":
		return field + " must be one of " + joinLangs()
	case "server_path":
		return field + " must be a server path without scheme or spaces"
	case "file_link":
		return field + " must be an http(s) URL or a server path without spaces"
	case "email":
		return field + " must be a valid email"
	case "gt", "gte", "max":
		return fmt.Sprintf("%s must satisfy %s=%s", field, tag, param)
	default:
		return field + " is invalid"
	}
}

// IsValidProductCode проверяет бизнес-код товара, например G001 или AB1234.
func IsValidProductCode(code string) bool {
	return productCodeRe.MatchString(code)
}

// IsSupportedCurrency проверяет, что код валюты входит в список принимаемых.
func IsSupportedCurrency(code string) bool {
	for _, c := range model.Currencies {
		if string(c) == code {
			return true
		}
	}
	return false
}

// IsSupportedLang проверяет код языка.
func IsSupportedLang(lang string) bool {
	for _, l := range model.Langs {
		if string(l) == lang {
			return true
		}
	}
	return false
}

// IsServerPath проверяет путь к ресурсу на сервере: непустой, без пробелов и без схемы.
func IsServerPath(v string) bool {
	if strings.TrimSpace(v) == "" || strings.Contains(v, " ") {
		return false
	}
	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return false
	}
	return !hasScheme(v)
}

// IsFileLink допускает http(s) URL или путь на сервере без схемы.
func IsFileLink(v string) bool {
	if strings.TrimSpace(v) == "" || strings.Contains(v, " ") {
		return false
	}
	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return true
	}
	return !hasScheme(v)
}

func hasScheme(v string) bool {
	first, _, _ := strings.Cut(v, "/")
	return strings.Contains(first, ":")
}

func joinCurrencies() string {
	parts := make([]string, 0, len(model.Currencies))
	for _, c := range model.Currencies {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}

func joinLangs() string {
	parts := make([]string, 0, len(model.Langs))
	for _, l := range model.Langs {
		parts = append(parts, string(l))
	}
	return strings.Join(parts, ", ")
}
