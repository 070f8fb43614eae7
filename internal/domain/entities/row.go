package entities

import "encoding/json"

// Row is a record as exchanged with the table store: column name to value.
type Row = map[string]any

// ToRow converts an entity into a Row using its json tags as column names.
func ToRow(v any) (Row, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var row Row
	if err := json.Unmarshal(b, &row); err != nil {
		return nil, err
	}
	return row, nil
}

// FromRow decodes a Row into out, which must be a pointer.
func FromRow(row Row, out any) error {
	b, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
