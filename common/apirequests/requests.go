package apirequests

// Bodies and query strings accepted by the mock backend. Validation tags are
// checked with common/validator.

// Used for Login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Used for CreateProduct and UpdateProduct
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Price       float64 `json:"price" validate:"gte=0,lte=999999999"`
	Quantity    int     `json:"quantity" validate:"gte=0,lte=99999"`
	Category    string  `json:"category" validate:"required,oneof=LAPTOP DESKTOP SMARTPHONE TABLET WEARABLE MONITOR PRINTER ACCESSORY NETWORK_DEVICE"`
	Description string  `json:"description" validate:"max=500"`
}

// Used for ListProducts. Pointer fields distinguish "absent" from zero.
type ProductFilterRequest struct {
	Page        int      `query:"page" validate:"gte=0"`
	Size        int      `query:"size" validate:"gte=0,lte=100"`
	Search      string   `query:"search"`
	Category    string   `query:"category" validate:"omitempty,oneof=LAPTOP DESKTOP SMARTPHONE TABLET WEARABLE MONITOR PRINTER ACCESSORY NETWORK_DEVICE"`
	MinPrice    *float64 `query:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice    *float64 `query:"maxPrice" validate:"omitempty,gte=0"`
	MinQuantity *int     `query:"minQuantity" validate:"omitempty,gte=0"`
	MaxQuantity *int     `query:"maxQuantity" validate:"omitempty,gte=0"`
}
