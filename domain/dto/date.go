package dto

import (
	"encoding/json"
	"time"

	"github.com/JorgeJ97/task-management-backend/domain/query"
)

// Date รับทั้ง RFC3339 และ YYYY-MM-DD (layout เดียวกับ filter ของ list)
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &FieldError{Field: "deadline", Message: "must be a date string"}
	}
	t, err := query.ParseDate(raw)
	if err != nil {
		return &FieldError{Field: "deadline", Message: "must be a valid date"}
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

// TimePtr - nil คงเป็น nil
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
