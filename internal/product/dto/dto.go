package dto

type ProductFilters struct {
	Category    string `json:"category,omitempty"`
	SearchQuery string `json:"q,omitempty"` // name, sku or description
	LowStock    bool   `json:"low_stock,omitempty"`
	Skip        int    `json:"skip"`
	Limit       int    `json:"limit"`
}
