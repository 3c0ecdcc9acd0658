package models

// Product is the backend's catalog record.
type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	SalesPrice        float64 `json:"sales_price"`
	ProductionPrice   float64 `json:"production_price"`
	DiscountPrice     float64 `json:"discount_price"`
	ManufacturerPrice float64 `json:"manufacturer_price"`
	ImageURL          string  `json:"image_url,omitempty"`
	Status            string  `json:"status"`
}

// ProductInput is the create/update form payload for a product.
// ImagePath, when set, points at a local file to be uploaded as
// multipart form data alongside the other fields.
type ProductInput struct {
	Name              string  `json:"name" validate:"required,min=2,max=100"`
	Price             float64 `json:"price" validate:"min=0"`
	SalesPrice        float64 `json:"sales_price" validate:"min=0"`
	ProductionPrice   float64 `json:"production_price" validate:"min=0"`
	DiscountPrice     float64 `json:"discount_price" validate:"min=0"`
	ManufacturerPrice float64 `json:"manufacturer_price" validate:"min=0"`
	Status            string  `json:"status" validate:"required,oneof=Active Inactive"`
	ImagePath         string  `json:"-"`
}
