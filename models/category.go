package models

// Category is one display category of the static storefront taxonomy. It maps
// a curated name/description/image onto the upstream catalog's category codes.
// The taxonomy is loaded once at startup and never mutated at runtime.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	APICategories []string      `json:"api_categories"`
	Subcategories []SubCategory `json:"subcategories,omitempty"`
}

// SubCategory narrows a parent Category to a subset of its upstream codes.
type SubCategory struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ParentID      string   `json:"parent_id"`
	Description   string   `json:"description,omitempty"`
	APICategories []string `json:"api_categories"`
}

// Matches reports whether an upstream category code belongs to this category,
// directly or via any subcategory. A parent's APICategories is a superset of
// its subcategories' codes, so the direct check is sufficient, but walking the
// subcategories keeps the invariant honest if a taxonomy edit breaks it.
func (c Category) Matches(apiCategory string) bool {
	for _, code := range c.APICategories {
		if code == apiCategory {
			return true
		}
	}
	for _, sub := range c.Subcategories {
		if sub.Matches(apiCategory) {
			return true
		}
	}
	return false
}

// Matches reports whether an upstream category code belongs to this subcategory.
func (s SubCategory) Matches(apiCategory string) bool {
	for _, code := range s.APICategories {
		if code == apiCategory {
			return true
		}
	}
	return false
}

// Subcategory returns the subcategory with the given id, if present.
func (c Category) Subcategory(id string) (SubCategory, bool) {
	for _, sub := range c.Subcategories {
		if sub.ID == id {
			return sub, true
		}
	}
	return SubCategory{}, false
}

// FindCategory resolves a category id against a taxonomy.
func FindCategory(taxonomy []Category, id string) (Category, bool) {
	for _, cat := range taxonomy {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// DefaultCategories is the storefront's static taxonomy over the public demo
// catalog's category codes.
var DefaultCategories = []Category{
	{
		ID:            "electronics",
		Name:          "Electronics",
		Description:   "Latest gadgets and electronic devices",
		Image:         "https://images.unsplash.com/photo-1498049794561-7780e7231661",
		APICategories: []string{"smartphones", "laptops", "automotive"},
		Subcategories: []SubCategory{
			{
				ID:            "phones",
				Name:          "Phones & Tablets",
				ParentID:      "electronics",
				Description:   "Mobile phones and tablets",
				APICategories: []string{"smartphones"},
			},
			{
				ID:            "computers",
				Name:          "Computers & Laptops",
				ParentID:      "electronics",
				Description:   "Desktop computers and laptops",
				APICategories: []string{"laptops"},
			},
		},
	},
	{
		ID:            "fashion",
		Name:          "Fashion",
		Description:   "Trendy clothing and accessories",
		Image:         "https://images.unsplash.com/photo-1445205170230-053b83016050",
		APICategories: []string{"mens-shirts", "mens-shoes", "mens-watches", "womens-dresses", "womens-shoes", "womens-watches", "womens-bags", "womens-jewellery"},
		Subcategories: []SubCategory{
			{
				ID:            "mens",
				Name:          "Men's Fashion",
				ParentID:      "fashion",
				Description:   "Men's clothing and accessories",
				APICategories: []string{"mens-shirts", "mens-shoes", "mens-watches"},
			},
			{
				ID:            "womens",
				Name:          "Women's Fashion",
				ParentID:      "fashion",
				Description:   "Women's clothing and accessories",
				APICategories: []string{"womens-dresses", "womens-shoes", "womens-watches", "womens-bags", "womens-jewellery"},
			},
		},
	},
	{
		ID:            "home",
		Name:          "Home & Living",
		Description:   "Furniture and home decor",
		Image:         "https://images.unsplash.com/photo-1524758631624-e2822e304c36",
		APICategories: []string{"furniture", "home-decoration", "lighting"},
		Subcategories: []SubCategory{
			{
				ID:            "furniture",
				Name:          "Furniture",
				ParentID:      "home",
				Description:   "Modern and classic furniture",
				APICategories: []string{"furniture"},
			},
			{
				ID:            "decor",
				Name:          "Home Decor",
				ParentID:      "home",
				Description:   "Decorative items and lighting",
				APICategories: []string{"home-decoration", "lighting"},
			},
		},
	},
	{
		ID:            "beauty",
		Name:          "Beauty & Personal Care",
		Description:   "Skincare, makeup, and fragrances",
		Image:         "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9",
		APICategories: []string{"fragrances", "skincare"},
		Subcategories: []SubCategory{
			{
				ID:            "skincare",
				Name:          "Skincare",
				ParentID:      "beauty",
				Description:   "Skincare products",
				APICategories: []string{"skincare"},
			},
			{
				ID:            "fragrances",
				Name:          "Fragrances",
				ParentID:      "beauty",
				Description:   "Perfumes and fragrances",
				APICategories: []string{"fragrances"},
			},
		},
	},
	{
		ID:            "groceries",
		Name:          "Groceries",
		Description:   "Fresh food and household essentials",
		Image:         "https://images.unsplash.com/photo-1542838132-92c53300491e",
		APICategories: []string{"groceries"},
		Subcategories: []SubCategory{
			{
				ID:            "food",
				Name:          "Food & Beverages",
				ParentID:      "groceries",
				Description:   "Food and beverage items",
				APICategories: []string{"groceries"},
			},
		},
	},
}
