package dogs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errNotObject = errors.New("body must be a json object")

// validKeys en el orden en que se reportan los errores de tipo.
var validKeys = []string{"age", "name", "breed", "description"}

var fieldTypes = map[string]string{
	"age":         "number",
	"name":        "string",
	"breed":       "string",
	"description": "string",
}

// body guarda el objeto JSON crudo respetando el orden de las keys,
// así los errores de "key inválida" salen en el mismo orden que el request.
type body struct {
	keys []string
	raw  map[string]json.RawMessage
}

func (b body) has(key string) bool {
	_, ok := b.raw[key]
	return ok
}

// decodeBody lee un objeto JSON. Body vacío = {}.
// Keys duplicadas: gana el último valor, se reporta una sola vez.
func decodeBody(r io.Reader) (body, error) {
	b := body{raw: map[string]json.RawMessage{}}
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err == io.EOF {
		return b, nil
	}
	if err != nil {
		return body{}, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return body{}, errNotObject
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return body{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return body{}, errNotObject
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return body{}, err
		}
		if !b.has(key) {
			b.keys = append(b.keys, key)
		}
		b.raw[key] = v
	}

	// cierre '}'
	if _, err := dec.Token(); err != nil {
		return body{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return body{}, errNotObject
	}
	return b, nil
}

// invalidKeyErrors: "'<key>' is not a valid key" por cada key desconocida.
func invalidKeyErrors(b body) []string {
	out := make([]string, 0)
	for _, k := range b.keys {
		if _, ok := fieldTypes[k]; !ok {
			out = append(out, fmt.Sprintf("'%s' is not a valid key", k))
		}
	}
	return out
}

// fieldTypeErrors aplica la regla "typeof": el valor tiene que ser
// exactamente un número / string JSON. Ausente o null también es error.
func fieldTypeErrors(b body) []string {
	out := make([]string, 0)
	for _, k := range validKeys {
		want := fieldTypes[k]
		if jsonType(b.raw[k]) != want {
			out = append(out, fmt.Sprintf("%s should be a %s", k, want))
		}
	}
	return out
}

// jsonType devuelve "number", "string", "boolean", "object", "array", "null"
// o "" si el valor no existe.
func jsonType(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	default:
		return "object"
	}
}

// createInput asume que fieldTypeErrors(b) ya vino vacío.
func createInput(b body) (CreateInput, error) {
	var in CreateInput
	if err := json.Unmarshal(b.raw["name"], &in.Name); err != nil {
		return CreateInput{}, err
	}
	if err := json.Unmarshal(b.raw["breed"], &in.Breed); err != nil {
		return CreateInput{}, err
	}
	if err := json.Unmarshal(b.raw["age"], &in.Age); err != nil {
		return CreateInput{}, err
	}
	if err := json.Unmarshal(b.raw["description"], &in.Description); err != nil {
		return CreateInput{}, err
	}
	return in, nil
}

// patchFromBody arma el Patch con los campos presentes. El handler no valida
// tipos en PATCH: un valor mal tipado o null llega como ErrRejected, igual que
// si el store rechazara la columna.
func patchFromBody(b body) (Patch, error) {
	var p Patch
	targets := map[string]any{
		"name":        &p.Name,
		"breed":       &p.Breed,
		"age":         &p.Age,
		"description": &p.Description,
	}
	for _, k := range validKeys {
		raw, ok := b.raw[k]
		if !ok {
			continue
		}
		if want := fieldTypes[k]; jsonType(raw) != want {
			return Patch{}, fmt.Errorf("%w: %s should be a %s", ErrRejected, k, want)
		}
		if err := json.Unmarshal(raw, targets[k]); err != nil {
			return Patch{}, fmt.Errorf("%w: %s: %v", ErrRejected, k, err)
		}
	}
	return p, nil
}
