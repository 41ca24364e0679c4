package dto

import "fmt"

// FieldError - ข้อผิดพลาดของ query/body field เดียว
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type IDParam struct {
	ID string `params:"id" validate:"required"`
}
