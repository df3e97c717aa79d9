package vehicle

import "fmt"

// Vehicle is an immutable make/model/year triple. Two vehicles are equal
// when all three fields are equal; == and Equal agree.
type Vehicle struct {
	maker string
	model string
	year  int
}

// Fields names every Vehicle field. It is a plain, mutable carrier used to
// declare a vehicle by field name and to read all of its values at once.
type Fields struct {
	Make  string
	Model string
	Year  int
}

// Option overrides one field while deriving a copy.
type Option func(*Fields)

// New declares a vehicle positionally.
func New(maker, model string, year int) Vehicle {
	return Vehicle{maker: maker, model: model, year: year}
}

// FromFields declares a vehicle by field name.
func FromFields(f Fields) Vehicle {
	return New(f.Make, f.Model, f.Year)
}

func (v Vehicle) Make() string  { return v.maker }
func (v Vehicle) Model() string { return v.model }
func (v Vehicle) Year() int     { return v.year }

// Fields returns a detached copy of the vehicle values.
func (v Vehicle) Fields() Fields {
	return Fields{Make: v.maker, Model: v.model, Year: v.year}
}

// Equal reports whether both vehicles hold the same values.
func (v Vehicle) Equal(other Vehicle) bool {
	return v == other
}

// With returns a copy of v with the given overrides applied in order.
// Fields not named by an option keep the values of v.
func (v Vehicle) With(opts ...Option) Vehicle {
	f := v.Fields()
	for _, opt := range opts {
		opt(&f)
	}

	return FromFields(f)
}

func (v Vehicle) String() string {
	return fmt.Sprintf("Vehicle { %s }", v.members())
}

func (v Vehicle) members() string {
	return fmt.Sprintf("Make = %s, Model = %s, Year = %d", v.maker, v.model, v.year)
}

// SetMake overrides the make.
func SetMake(maker string) Option {
	return func(f *Fields) { f.Make = maker }
}

// SetModel overrides the model.
func SetModel(model string) Option {
	return func(f *Fields) { f.Model = model }
}

// SetYear overrides the year.
func SetYear(year int) Option {
	return func(f *Fields) { f.Year = year }
}
