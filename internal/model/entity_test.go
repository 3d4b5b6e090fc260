package model

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestCode_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Code
		wantErr bool
	}{
		{"string code", `"23"`, "23", false},
		{"numeric code", `5968`, "5968", false},
		{"year code with fuel suffix", `"2015-1"`, "2015-1", false},
		{"null", `null`, "", false},
		{"object", `{"a":1}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Code
			err := jsoniter.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Unmarshal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategoryFromChoice(t *testing.T) {
	tests := []struct {
		choice int
		want   Category
		path   string
		ok     bool
	}{
		{1, Carros, "carros/marcas", true},
		{2, Motos, "motos/marcas", true},
		{3, Caminhoes, "caminhoes/marcas", true},
		{0, Category(0), "", false},
		{4, Category(4), "", false},
	}
	for _, tt := range tests {
		got, ok := CategoryFromChoice(tt.choice)
		if ok != tt.ok {
			t.Errorf("CategoryFromChoice(%d) ok = %v, want %v", tt.choice, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Errorf("CategoryFromChoice(%d) = %v, want %v", tt.choice, got, tt.want)
		}
		if got.Path() != tt.path {
			t.Errorf("CategoryFromChoice(%d).Path() = %q, want %q", tt.choice, got.Path(), tt.path)
		}
	}
}

func TestVehicle_String(t *testing.T) {
	year := 2015
	v := Vehicle{Value: "R$ 30.000,00", Brand: "VW - VolksWagen", Model: "Gol 1.0", YearModel: &year, Fuel: "Gasolina", FipeCode: "005340-6"}

	want := "Marca: VW - VolksWagen | Modelo: Gol 1.0 | Ano: 2015 | Combustível: Gasolina | Valor: R$ 30.000,00 | Código FIPE: 005340-6"
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	v.YearModel = nil
	if got := v.String(); got == want {
		t.Errorf("String() with nil year should not print a year")
	}
}
