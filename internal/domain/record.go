package domain

import "encoding/json"

// Record is one row of a schema-driven collection: named scalar fields keyed
// by their JSON name, plus the two identifiers every collection carries. The
// numeric ID stays internal; DocumentID is the stable external handle.
type Record struct {
	ID         int64          `json:"id"`
	DocumentID string         `json:"documentId"`
	Fields     map[string]any `json:"-"`
}

// MarshalJSON flattens the fields next to the identifiers, the shape the
// listing screens consume: {"id":1,"documentId":"...","name":"..."}.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["id"] = r.ID
	out["documentId"] = r.DocumentID
	return json.Marshal(out)
}

// Get returns a field value by JSON key.
func (r Record) Get(key string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[key]
}

// GetString returns a field as string, or "" when absent or not a string.
func (r Record) GetString(key string) string {
	if v, ok := r.Get(key).(string); ok {
		return v
	}
	return ""
}
