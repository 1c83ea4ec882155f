package vectorbt

// ColField is the name of the mandatory field identifying which logical
// column a record belongs to.
const ColField = "col"

// IdxField is the conventional name of the time-position field. A record
// array containing a field with this name adopts it automatically.
const IdxField = "idx"

// FieldKind enumerates the scalar types a record field may hold
type FieldKind int

const (
	// IntKind is a 64-bit signed integer field
	IntKind FieldKind = iota
	// FloatKind is a 64-bit floating point field
	FloatKind
	// BoolKind is a boolean field
	BoolKind
	// StringKind is a string field
	StringKind
)

// String returns a textual representation of a FieldKind
func (k FieldKind) String() string {
	switch k {
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	case StringKind:
		return "string"
	default:
		return "unknown"
	}
}

// IsNumeric returns true iff values of this kind can be projected to float64
func (k FieldKind) IsNumeric() bool {
	return k == IntKind || k == FloatKind || k == BoolKind
}

// Field describes a single named attribute within a Schema.
type Field interface {
	Clone() Field          // Clone returns a copy of this Field
	Index() int            // Index returns the position of this Field within a Schema
	SetIndex(newIndex int) // Modifies the Index of this Field within a Schema
	Kind() FieldKind       // Kind returns the FieldKind of this Field
}

// Schema is a mapping from field names to positions and kinds within a
// record array. It is fixed once a record array has been built against it.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	NumFields() int
	GetField(name string) (field Field, err error)
	HasField(name string) bool
	CreateField(name string, kind FieldKind) (newSchema Schema, err error)
	FieldNames() []string
	FieldKinds() []FieldKind
	ForEachField(fn func(name string, field Field) error) error
}
