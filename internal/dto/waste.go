package dto

type CreateWasteLogRequest struct {
	ItemName    string  `json:"itemName" validate:"required,max=255"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	Unit        string  `json:"unit" validate:"required,max=20"`
	CostPerUnit float64 `json:"costPerUnit" validate:"gte=0"`
	Reason      string  `json:"reason" validate:"required,max=100"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
}
