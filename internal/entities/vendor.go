package entities

// Vendor is a shopkeeper.
type Vendor string

// Shopkeepers. Snide and Wrinkly exist in game but sell nothing here.
const (
	VendorCranky Vendor = "Cranky"
	VendorFunky  Vendor = "Funky"
	VendorCandy  Vendor = "Candy"
)

// AllVendors lists every vendor.
var AllVendors = []Vendor{VendorCranky, VendorFunky, VendorCandy}

func (v Vendor) String() string { return string(v) }
