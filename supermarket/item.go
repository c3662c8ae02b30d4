package supermarket

import "math/rand"

// Catalog is the fixed set of products a cashier can scan.
var Catalog = []string{
	"Leche", "Pan", "Huevos", "Cereal", "Manzanas",
	"Agua", "Arroz", "Frijoles", "Jugo", "Galletas",
}

// Item is a scanned product. Items are value types; enqueueing copies them
// into the packing area.
type Item struct {
	Name string
	Code int
}

// RandomItem draws a product from the catalog with a code in [1000, 9999].
// The top-level rand functions are safe for concurrent use, so every worker
// can call this directly.
func RandomItem() Item {
	return Item{
		Name: Catalog[rand.Intn(len(Catalog))],
		Code: rand.Intn(9000) + 1000,
	}
}
