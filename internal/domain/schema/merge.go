package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

const idKey = "_id"

var errNotObject = errors.New("request body must be a JSON object")

// Decode reads a new document from a JSON object body. A client supplied
// "_id" is dropped, identifiers are always assigned by the store.
func Decode[T any](body []byte) (*T, error) {
	changes, err := readObject(body)
	if err != nil {
		return nil, err
	}
	delete(changes, idKey)
	return rebuild[T](changes)
}

// Patch is the parsed body of a partial update, keyed by top-level field.
// "_id" never appears in it.
type Patch map[string]json.RawMessage

// ParsePatch reads body as a JSON object. An empty body is an empty patch.
func ParsePatch(body []byte) (Patch, error) {
	changes, err := readObject(body)
	if err != nil {
		return nil, err
	}
	delete(changes, idKey)
	return Patch(changes), nil
}

// Fields lists the keys the patch touches, sorted.
func (p Patch) Fields() []string {
	fields := make([]string, 0, len(p))
	for k := range p {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// Apply lays the patch over current and returns the result as a new value.
// A key set to null clears the field; nested objects are replaced whole.
// current is not modified.
func Apply[T any](current *T, patch Patch) (*T, error) {
	raw, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("encode current document: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode current document: %w", err)
	}

	for key, value := range patch {
		if key == idKey {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			delete(doc, key)
			continue
		}
		doc[key] = value
	}
	return rebuild[T](doc)
}

func readObject(body []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	if trimmed[0] != '{' {
		return nil, errNotObject
	}
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func rebuild[T any](doc map[string]json.RawMessage) (*T, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}
