package types

// Category identifies one of the fixed design databases. The set is closed:
// categories are independent collections with no cross-references.
type Category string

const (
	CategoryProduct    Category = "product"
	CategoryStyle      Category = "style"
	CategoryColor      Category = "color"
	CategoryTypography Category = "typography"
	CategoryLanding    Category = "landing"
	CategoryChart      Category = "chart"
	CategoryUX         Category = "ux"
)

// categories is the canonical iteration order. Multi-category searches visit
// categories in this order, which also resolves exact score ties.
var categories = []Category{
	CategoryProduct,
	CategoryStyle,
	CategoryColor,
	CategoryTypography,
	CategoryLanding,
	CategoryChart,
	CategoryUX,
}

// Categories returns all categories in canonical order. The returned slice
// must not be modified.
func Categories() []Category {
	return categories
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, cat := range categories {
		if c == cat {
			return true
		}
	}
	return false
}

// CategoryNames returns the canonical category names as strings, for use in
// tool schemas and validation messages.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}
