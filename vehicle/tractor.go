package vehicle

import "fmt"

// Tractor is a Vehicle with an attachment. It is its own type: a Tractor is
// never equal to a Vehicle, even when the shared fields match.
type Tractor struct {
	base       Vehicle
	attachment string
}

func NewTractor(maker, model string, year int, attachment string) Tractor {
	return Tractor{base: New(maker, model, year), attachment: attachment}
}

func (t Tractor) Make() string       { return t.base.maker }
func (t Tractor) Model() string      { return t.base.model }
func (t Tractor) Year() int          { return t.base.year }
func (t Tractor) Attachment() string { return t.attachment }

// Base returns the vehicle part of the tractor.
func (t Tractor) Base() Vehicle {
	return t.base
}

// Equal reports whether both tractors hold the same values, attachment included.
func (t Tractor) Equal(other Tractor) bool {
	return t == other
}

// With overrides vehicle fields and keeps the attachment.
func (t Tractor) With(opts ...Option) Tractor {
	return Tractor{base: t.base.With(opts...), attachment: t.attachment}
}

// WithAttachment returns a copy of t with a different attachment.
func (t Tractor) WithAttachment(attachment string) Tractor {
	return Tractor{base: t.base, attachment: attachment}
}

func (t Tractor) String() string {
	return fmt.Sprintf("Tractor { %s, Attachment = %s }", t.base.members(), t.attachment)
}
