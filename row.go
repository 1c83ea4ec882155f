package vectorbt

// Row is a read-only view of a single record within a record array, along
// with a reference to the Schema for that record. In practice, users of Row
// will call its getter methods from within a MapKernel to retrieve data
type Row interface {
	Schema() Schema                                    // Schema returns the schema for this row
	Pos() int                                          // Pos returns the position of this row within its record array
	Col() int                                          // Col returns the logical column id this row belongs to
	Get(name string) (value interface{}, err error)    // Get returns the value of any field as an interface{}, if it exists
	GetInt64(name string) (value int64, err error)     // GetInt64 retrieves a single int64 from the field with the given name
	GetFloat64(name string) (value float64, err error) // GetFloat64 retrieves a single float64 from the field with the given name
	GetBool(name string) (value bool, err error)       // GetBool retrieves a single bool from the field with the given name
	GetString(name string) (value string, err error)   // GetString retrieves a single string from the field with the given name
	ToString() string                                  // ToString returns a string representation of this row
}
