package models

// SMSInput is the bulk SMS form payload. Every recipient must be a valid
// Bangladesh mobile number.
type SMSInput struct {
	Numbers []string `json:"numbers" validate:"required,min=1,dive,bdphone"`
	Message string   `json:"message" validate:"required,max=500"`
}
