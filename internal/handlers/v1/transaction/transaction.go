package transaction

// Transaction is the API response model for a sale record.
// It is used only for responses, not for request bodies.
type Transaction struct {
	Title       string  `json:"title" doc:"Product title"`
	Description string  `json:"description" doc:"Product description"`
	Price       float64 `json:"price" doc:"Sale price"`
	Category    string  `json:"category" doc:"Product category, may be blank"`
	DateOfSale  string  `json:"dateOfSale" doc:"RFC3339 sale date"`
	Sold        bool    `json:"sold" doc:"Whether the product sold"`
}
