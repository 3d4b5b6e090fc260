package fipetest

import "tabela-fipe-cli/internal/model"

// SampleCatalog returns a small catalog: cars brand "25" with the "Gol"
// model "5968" priced for 2015 and 2016.
func SampleCatalog() Catalog {
	y2015, y2016 := 2015, 2016

	return Catalog{
		Brands: map[string][]model.Entity{
			"carros": {
				{Code: "59", Name: "VW - VolksWagen"},
				{Code: "25", Name: "Honda"},
				{Code: "1", Name: "Acura"},
			},
			"motos": {
				{Code: "77", Name: "HONDA"},
			},
			"caminhoes": {
				{Code: "102", Name: "SCANIA"},
			},
		},
		Models: map[string][]model.Entity{
			"25": {
				{Code: "5968", Name: "Gol 1.0 Trend"},
				{Code: "4403", Name: "Civic EX"},
				{Code: "10", Name: "Fit LX"},
				{Code: "4411", Name: "Accord"},
			},
		},
		Years: map[string][]model.Entity{
			"5968": {
				{Code: "2015", Name: "2015"},
				{Code: "2016", Name: "2016"},
			},
			"4403": {
				{Code: "2015", Name: "2015"},
				{Code: "2099", Name: "2099"},
			},
		},
		Vehicles: map[string]map[string]model.Vehicle{
			"5968": {
				"2015": {Value: "R$ 30.000,00", Brand: "Honda", Model: "Gol 1.0 Trend", YearModel: &y2015, Fuel: "Gasolina", FipeCode: "005340-6"},
				"2016": {Value: "R$ 32.500,00", Brand: "Honda", Model: "Gol 1.0 Trend", YearModel: &y2016, Fuel: "Gasolina", FipeCode: "005340-6"},
			},
			"4403": {
				"2015": {Value: "R$ 60.000,00", Brand: "Honda", Model: "Civic EX", YearModel: &y2015, Fuel: "Gasolina", FipeCode: "014075-9"},
			},
		},
	}
}
