package starname

// Field identifies one of the four form inputs.
type Field int

const (
	FirstName Field = iota
	LastName
	CityBorn
	MaidenName
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"first name",
	"last name",
	"city born",
	"mother's maiden name",
}

// minimum character counts, indexed by Field
var minLengths = [fieldCount]int{2, 3, 3, 2}

// Fields returns every field in form order.
func Fields() []Field {
	return []Field{FirstName, LastName, CityBorn, MaidenName}
}

// Label returns the human-readable name of the field.
func (f Field) Label() string {
	if !f.valid() {
		return "unknown"
	}
	return fieldLabels[f]
}

// MinLength returns the number of characters the field needs before a name
// can be generated from it.
func (f Field) MinLength() int {
	if !f.valid() {
		return 0
	}
	return minLengths[f]
}

func (f Field) String() string { return f.Label() }

func (f Field) valid() bool {
	return f >= 0 && f < fieldCount
}
