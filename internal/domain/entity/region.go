package entity

// Region identifies a regional distribution center. Fulfillment is strictly
// regional: a customer's availability depends only on their own region's
// stock, never on other regions'.
type Region string

const (
	RegionNorth   Region = "North"
	RegionSouth   Region = "South"
	RegionEast    Region = "East"
	RegionWest    Region = "West"
	RegionCentral Region = "Central"
)

// AllRegions returns every fulfillment region.
func AllRegions() []Region {
	return []Region{RegionNorth, RegionSouth, RegionEast, RegionWest, RegionCentral}
}

// String returns the string representation of the Region.
func (r Region) String() string {
	return string(r)
}

// IsValid checks if the Region is a valid value.
func (r Region) IsValid() bool {
	switch r {
	case RegionNorth, RegionSouth, RegionEast, RegionWest, RegionCentral:
		return true
	default:
		return false
	}
}
