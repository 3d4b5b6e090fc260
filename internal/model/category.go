package model

// Category e o tipo de veiculo escolhido no inicio da consulta
type Category int

const (
	Carros Category = iota + 1
	Motos
	Caminhoes
)

type categoryInfo struct {
	label string
	path  string
}

var categories = map[Category]categoryInfo{
	Carros:    {label: "Carros", path: "carros/marcas"},
	Motos:     {label: "Motos", path: "motos/marcas"},
	Caminhoes: {label: "Caminhões", path: "caminhoes/marcas"},
}

// Categories lists the categories in menu order.
func Categories() []Category {
	return []Category{Carros, Motos, Caminhoes}
}

// CategoryFromChoice maps the number typed in the menu to a category.
func CategoryFromChoice(choice int) (Category, bool) {
	c := Category(choice)
	_, ok := categories[c]
	return c, ok
}

// Path returns the brands path segment, or "" for an unknown category.
func (c Category) Path() string {
	return categories[c].path
}

func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.label
	}
	return "Desconhecida"
}
