package entity

// Location ubicación física dentro de la bodega (bin, rack, zone).
type Location struct {
	ID   string
	Code string // código de ubicación, ej. A1-01
	Name string
	Type string // etiqueta libre: bin, rack, zone; por defecto "bin"
}
