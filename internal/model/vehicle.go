package model

import (
	"fmt"
	"strconv"
)

// Vehicle representa o detalhe de preco de um modelo em um ano
type Vehicle struct {
	Value     string `json:"Valor"`
	Brand     string `json:"Marca"`
	Model     string `json:"Modelo"`
	YearModel *int   `json:"AnoModelo"`
	Fuel      string `json:"Combustivel"`
	FipeCode  string `json:"CodigoFipe"`
}

func (v Vehicle) String() string {
	year := "-"
	if v.YearModel != nil {
		year = strconv.Itoa(*v.YearModel)
	}

	return fmt.Sprintf("Marca: %s | Modelo: %s | Ano: %s | Combustível: %s | Valor: %s | Código FIPE: %s",
		v.Brand, v.Model, year, v.Fuel, v.Value, v.FipeCode)
}
