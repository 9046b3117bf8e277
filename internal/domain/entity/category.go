package entity

// Category y Color son conjuntos cerrados con variante vacía ("sin especificar").
// Se validan en el borde HTTP; en la base se guardan como texto plano.

// Category categoría de una pieza.
type Category string

// Categorías permitidas.
const (
	CategoryUnspecified Category = ""
	CategoryFabric      Category = "Fabric"
	CategoryHardware    Category = "Hardware"
	CategoryZipper      Category = "Zipper"
	CategoryInterfacing Category = "Interfacing"
	CategoryThread      Category = "Thread"
	CategoryWebbing     Category = "Webbing"
)

var categories = map[Category]bool{
	CategoryUnspecified: true,
	CategoryFabric:      true,
	CategoryHardware:    true,
	CategoryZipper:      true,
	CategoryInterfacing: true,
	CategoryThread:      true,
	CategoryWebbing:     true,
}

// ParseCategory valida el texto contra el conjunto cerrado. Vacío es válido (sin especificar).
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, categories[c]
}

// Color acabado o color de una pieza.
type Color string

// Colores permitidos.
const (
	ColorUnspecified  Color = ""
	ColorNickel       Color = "Nickel"
	ColorAntiqueBrass Color = "Antique Brass"
	ColorGold         Color = "Gold"
	ColorRoseGold     Color = "Rose Gold"
	ColorBlack        Color = "Black"
	ColorRainbow      Color = "Rainbow"
	ColorNatural      Color = "Natural"
)

var colors = map[Color]bool{
	ColorUnspecified:  true,
	ColorNickel:       true,
	ColorAntiqueBrass: true,
	ColorGold:         true,
	ColorRoseGold:     true,
	ColorBlack:        true,
	ColorRainbow:      true,
	ColorNatural:      true,
}

// ParseColor valida el texto contra el conjunto cerrado. Vacío es válido (sin especificar).
func ParseColor(s string) (Color, bool) {
	c := Color(s)
	return c, colors[c]
}
