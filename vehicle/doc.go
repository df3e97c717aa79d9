// Package vehicle provides immutable value types compared by their contents.
//
// A Vehicle can be declared positionally (New) or with named fields
// (FromFields); both produce the same value. Fields are read through getters
// and never change after construction. With returns a modified copy and
// leaves the receiver untouched.
//
// Tractor extends Vehicle by composition with one extra field.
package vehicle
