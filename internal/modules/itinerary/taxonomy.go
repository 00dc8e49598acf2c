// README: Fixed two-level activity taxonomy offered by the planner form.
package itinerary

// Category is a top-level activity group and the sub-items it offers.
type Category struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

var taxonomy = []Category{
	{Label: "Outdoor 🌲", Items: []string{"Hiking", "Camping", "Beach", "Water Sports"}},
	{Label: "Shopping 🛍️", Items: []string{"Malls", "Antique Shops", "Luxury Brands", "Street Markets"}},
	{Label: "Food & Drink 🍽️", Items: []string{"Local Cuisine", "Fine Dining", "Street Food", "Wineries", "Breweries"}},
	{Label: "Cultural 🎨", Items: []string{"Museums", "Historical Sites", "Festivals", "Art Galleries"}},
	{Label: "Adventure 🧗", Items: []string{"Skydiving", "Scuba Diving", "Mountain Climbing"}},
}

// Taxonomy returns a copy of the activity categories in display order.
func Taxonomy() []Category {
	out := make([]Category, len(taxonomy))
	for i, c := range taxonomy {
		out[i] = Category{Label: c.Label, Items: append([]string(nil), c.Items...)}
	}
	return out
}

// LookupCategory finds a category by its exact label.
func LookupCategory(label string) (Category, bool) {
	for _, c := range taxonomy {
		if c.Label == label {
			return c, true
		}
	}
	return Category{}, false
}

// Offers reports whether item is one of the category's sub-items.
func (c Category) Offers(item string) bool {
	for _, it := range c.Items {
		if it == item {
			return true
		}
	}
	return false
}
