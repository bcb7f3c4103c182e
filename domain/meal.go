package domain

// Meal is the catalog entry a bargain targets. The negotiation core only
// reads Price (snapshot at proposal time), RestaurantID and IsAvailable.
type Meal struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	Category     string
	RestaurantID string
	ImageURL     string
	IsAvailable  bool
	Tags         []string
}
