package request

// ProductRequest represents a product create/update request
type ProductRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=255"`
	Barcode    *string `json:"barcode" binding:"omitempty,max=100"`
	Stock      float64 `json:"stock" binding:"gte=0"`
	StockAlert float64 `json:"stock_alert" binding:"gte=0"`
	BuyPrice   float64 `json:"buy_price" binding:"gte=0"`
	SellPrice  float64 `json:"sell_price" binding:"gte=0"`
	GSTPercent float64 `json:"gst_percent" binding:"gte=0,lte=100"`
	Unit       *string `json:"unit" binding:"omitempty,max=50"`
	Notes      *string `json:"notes"`
}

// CustomerRequest represents a customer create/update request
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Contact *string `json:"contact" binding:"omitempty,max=50"`
	Address *string `json:"address"`
}

// SupplierRequest represents a supplier create/update request
type SupplierRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Contact   *string `json:"contact" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address"`
	GSTNumber *string `json:"gst_number" binding:"omitempty,max=50"`
}
