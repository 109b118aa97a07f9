package entity

// Category classifies a catalog product.
type Category string

const (
	CategoryPackagedFood Category = "Packaged Food"
	CategoryBeverages    Category = "Beverages"
	CategoryHomeCleaning Category = "Home Cleaning"
	CategoryPersonalCare Category = "Personal Care"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPackagedFood, CategoryBeverages, CategoryHomeCleaning, CategoryPersonalCare:
		return true
	default:
		return false
	}
}
