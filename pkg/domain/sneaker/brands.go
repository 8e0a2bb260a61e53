package sneaker

// KnownBrands is the static brand list exposed by the catalog API.
var KnownBrands = []string{
	"Nike",
	"Adidas",
	"Jordan",
	"Puma",
	"New Balance",
	"Converse",
	"Vans",
	"Reebok",
	"ASICS",
	"Under Armour",
}
