package dogs

// Dog es la única entidad del servicio.
// ID lo asigna el store al crear y no cambia ni se reutiliza.
type Dog struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Breed       string  `json:"breed"`
	Age         float64 `json:"age"`
	Description string  `json:"description"`
}

// CreateInput son los cuatro campos requeridos al crear.
type CreateInput struct {
	Name        string
	Breed       string
	Age         float64
	Description string
}

// Patch para PATCH real: nil = no tocar.
type Patch struct {
	Name        *string
	Breed       *string
	Age         *float64
	Description *string
}

// Apply devuelve una copia de d con los campos presentes del patch.
func (p Patch) Apply(d Dog) Dog {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Breed != nil {
		d.Breed = *p.Breed
	}
	if p.Age != nil {
		d.Age = *p.Age
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	return d
}
