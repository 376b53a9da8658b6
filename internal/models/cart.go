package models

// CartEntry is one item picked from a cafe menu
type CartEntry struct {
	Cafe string `json:"cafe"`
	Item string `json:"item"`
}

// Catalog maps a cafe name to the items it serves
type Catalog map[string][]string

// DefaultCatalog is the fixed cafe list served by the cart API
func DefaultCatalog() Catalog {
	return Catalog{
		"Cafe One":   {"Coffee", "Sandwich", "Muffin"},
		"Cafe Two":   {"Tea", "Burger", "Fries"},
		"Cafe Three": {"Pizza", "Pasta", "Salad"},
	}
}

// Serves reports whether cafe has item on its menu
func (c Catalog) Serves(cafe, item string) bool {
	for _, i := range c[cafe] {
		if i == item {
			return true
		}
	}
	return false
}
