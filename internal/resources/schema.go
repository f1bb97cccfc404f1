package resources

import "strings"

// FieldKind drives scanning and patch coercion for a schema column.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInt
	KindBool
)

// Field declares one column of a collection: its JSON key on the wire, the
// backing column, and what the list contract allows on it.
type Field struct {
	Key        string
	Column     string
	Kind       FieldKind
	Required   bool
	Filterable bool
	Sortable   bool
}

// Schema is the statically declared shape of one collection. Listing screens
// render from this, never from whatever keys a fetched row happens to have,
// so empty result sets keep their columns.
type Schema struct {
	Name   string // URL resource segment, e.g. "vehicle-types"
	Table  string
	Label  string // Indonesian label used in messages
	Fields []Field
}

func (s Schema) FieldByKey(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func (s Schema) FieldByColumn(col string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Column == col {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredKeys lists the keys the editor must fill before submitting.
func (s Schema) RequiredKeys() []string {
	out := []string{}
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Key)
		}
	}
	return out
}

// Registry maps URL resource segments to their schemas.
var Registry = map[string]Schema{}

func register(s Schema) Schema {
	Registry[s.Name] = s
	return s
}

// Lookup resolves a resource segment case-insensitively.
func Lookup(name string) (Schema, bool) {
	s, ok := Registry[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

var VehicleTypes = register(Schema{
	Name:  "vehicle-types",
	Table: "vehicle_types",
	Label: "tipe kendaraan",
	Fields: []Field{
		{Key: "name", Column: "name", Kind: KindString, Required: true, Filterable: true, Sortable: true},
		{Key: "category", Column: "category", Kind: KindString, Filterable: true, Sortable: true},
		{Key: "year", Column: "model_year", Kind: KindInt, Sortable: true},
		{Key: "price", Column: "price", Kind: KindInt, Sortable: true},
		{Key: "imageUrl", Column: "image_url", Kind: KindString},
	},
})

var Colors = register(Schema{
	Name:  "colors",
	Table: "colors",
	Label: "warna",
	Fields: []Field{
		{Key: "name", Column: "name", Kind: KindString, Required: true, Filterable: true, Sortable: true},
		{Key: "hexCode", Column: "hex_code", Kind: KindString},
	},
})

var Branches = register(Schema{
	Name:  "branches",
	Table: "branches",
	Label: "cabang",
	Fields: []Field{
		{Key: "name", Column: "name", Kind: KindString, Required: true, Filterable: true, Sortable: true},
		{Key: "address", Column: "address", Kind: KindString, Filterable: true},
		{Key: "phone", Column: "phone", Kind: KindString},
	},
})

var Supervisors = register(Schema{
	Name:  "supervisors",
	Table: "supervisors",
	Label: "supervisor",
	Fields: []Field{
		{Key: "name", Column: "name", Kind: KindString, Required: true, Filterable: true, Sortable: true},
		{Key: "phone", Column: "phone", Kind: KindString},
		{Key: "branch", Column: "branch", Kind: KindString, Filterable: true, Sortable: true},
	},
})

var Categories = register(Schema{
	Name:  "categories",
	Table: "categories",
	Label: "kategori",
	Fields: []Field{
		{Key: "name", Column: "name", Kind: KindString, Required: true, Filterable: true, Sortable: true},
	},
})

var SalesProfiles = register(Schema{
	Name:  "sales-profiles",
	Table: "sales_profiles",
	Label: "sales",
	Fields: []Field{
		{Key: "name", Column: "name", Kind: KindString, Required: true, Filterable: true, Sortable: true},
		{Key: "phone", Column: "phone", Kind: KindString, Filterable: true},
		{Key: "branch", Column: "branch", Kind: KindString, Filterable: true, Sortable: true},
		{Key: "photoUrl", Column: "photo_url", Kind: KindString},
		{Key: "active", Column: "active", Kind: KindBool, Sortable: true},
	},
})
