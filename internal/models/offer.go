package models

// Offer describes one website package in the service catalog.
type Offer struct {
	Title         string   `json:"title"`
	Features      []string `json:"features"`
	OriginalPrice string   `json:"original_price"`
	OfferPrice    string   `json:"offer_price"`
	Badge         string   `json:"badge"`
}
