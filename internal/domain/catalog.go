package domain

type Product struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Img      string `json:"img"`
	Category string `json:"category"`
}

type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DefaultCategories is the fixed set served when the category collection
// cannot be read.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Phones", Icon: "📱"},
		{Name: "Laptops", Icon: "💻"},
		{Name: "Audio", Icon: "🎧"},
		{Name: "Accessories", Icon: "🔌"},
	}
}
