package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/JorgeJ97/task-management-backend/domain/dto"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator คืน validator ตัวเดียวที่ใช้ทั้งระบบ ชื่อ field ใน error ใช้ json tag
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// dto.Date ตรวจเหมือน time.Time (gt = อนาคต)
		validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(dto.Date); ok {
				return d.Time
			}
			return nil
		}, dto.Date{})
	})
	return validate
}

func ValidateStruct(s any) error {
	return Validator().Struct(s)
}

// GetValidationErrors แปลง error จาก validator เป็น []FieldError สำหรับ response
func GetValidationErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error(), Code: "invalid"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Code:    fe.Tag(),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "gt":
		if fe.Kind() == reflect.Struct {
			return fmt.Sprintf("%s must be a future date", fe.Field())
		}
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// SanitizeString ตัดช่องว่างหัวท้ายและลบ < > (กัน XSS แบบพื้นฐาน)
func SanitizeString(s string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(strings.TrimSpace(s))
}

// SanitizeStringPtr - nil คงเป็น nil
func SanitizeStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := SanitizeString(*s)
	return &v
}
