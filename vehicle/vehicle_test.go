package vehicle

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicle_Equality(t *testing.T) {
	mine := New("Honda", "Accord", 1993)
	yours := New("Honda", "Accord", 1993)

	require.True(t, mine == yours, "separately built vehicles differ:\n%s", spew.Sdump(mine, yours))
	assert.True(t, mine.Equal(yours))
	assert.Equal(t, mine, yours)

	tests := []struct {
		name  string
		other Vehicle
	}{
		{"make", New("Toyota", "Accord", 1993)},
		{"model", New("Honda", "Civic", 1993)},
		{"year", New("Honda", "Accord", 1994)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, mine.Equal(tt.other))
			assert.False(t, tt.other.Equal(mine))
		})
	}
}

func TestVehicle_FromFieldsMatchesPositional(t *testing.T) {
	positional := New("Honda", "Accord", 1993)
	named := FromFields(Fields{Make: "Honda", Model: "Accord", Year: 1993})

	assert.True(t, positional.Equal(named))
	assert.Equal(t, Fields{Make: "Honda", Model: "Accord", Year: 1993}, named.Fields())
}

func TestVehicle_FieldsIsDetached(t *testing.T) {
	mine := New("Honda", "Accord", 1993)

	f := mine.Fields()
	f.Year = 2020

	assert.Equal(t, 1993, mine.Year())
}

func TestVehicle_With(t *testing.T) {
	mine := New("Honda", "Accord", 1993)
	tradeIn := mine.With(SetYear(2020))

	assert.Equal(t, "Honda", tradeIn.Make())
	assert.Equal(t, "Accord", tradeIn.Model())
	assert.Equal(t, 2020, tradeIn.Year())

	assert.Equal(t, New("Honda", "Accord", 1993), mine, "receiver changed:\n%s", spew.Sdump(mine))
	assert.False(t, mine.Equal(tradeIn))
}

func TestVehicle_WithSameValuesIsEqual(t *testing.T) {
	mine := New("Honda", "Accord", 1993)

	assert.True(t, mine.Equal(mine.With()))
	assert.True(t, mine.Equal(mine.With(SetMake("Honda"), SetModel("Accord"), SetYear(1993))))
}

func TestVehicle_WithAppliesInOrder(t *testing.T) {
	got := New("Honda", "Accord", 1993).With(SetModel("Civic"), SetMake("Acura"), SetModel("Integra"))

	assert.Equal(t, New("Acura", "Integra", 1993), got)
}

func TestVehicle_String(t *testing.T) {
	assert.Equal(t, "Vehicle { Make = Honda, Model = Accord, Year = 1993 }", New("Honda", "Accord", 1993).String())
}

func TestVehicle_MapKey(t *testing.T) {
	seen := map[Vehicle]int{}
	seen[New("Honda", "Accord", 1993)]++
	seen[New("Honda", "Accord", 1993)]++

	require.Len(t, seen, 1)
	assert.Equal(t, 2, seen[New("Honda", "Accord", 1993)])
}
