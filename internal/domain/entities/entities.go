// Package entities contains core business entities.
// These are pure domain objects with no external dependencies.
package entities

// Record is one keyed row of a chat-log export.
// Values are whatever the source decoded: strings, numbers, nil, nested data.
type Record map[string]any

// Has reports whether the record carries the given key, even with a nil value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Document is the loader's output unit: a primary text payload plus
// every other field of the source record.
type Document struct {
	Content    string
	Attributes map[string]any
}
