package logging

// Field names shared by log calls.
const (
	FieldError    = "error"
	FieldPath     = "path"
	FieldKind     = "kind"
	FieldFormat   = "format"
	FieldEncoding = "encoding"
	FieldLines    = "lines"
	FieldPages    = "pages"
	FieldConfig   = "config"
	FieldWidth    = "width"
	FieldHeight   = "height"
)
