package model

import (
	"bytes"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// Code e o identificador opaco usado pela API FIPE para marcas, modelos e anos.
// A API envia "codigo" como string nas listas de marcas e anos e como numero
// na lista de modelos; os dois formatos viram texto.
type Code string

func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := jsoniter.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Code(s)
		return nil
	}

	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("codigo invalido %s: %w", data, err)
	}
	*c = Code(data)
	return nil
}

// Entity representa uma marca, um modelo ou um ano
type Entity struct {
	Code Code   `json:"codigo"`
	Name string `json:"nome"`
}

func (e Entity) String() string {
	return fmt.Sprintf("Código: %s - Nome: %s", e.Code, e.Name)
}

// ModelList envolve a resposta do endpoint de modelos
type ModelList struct {
	Models []Entity `json:"modelos"`
}
