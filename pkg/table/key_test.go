package table_test

import (
	"math"
	"testing"

	"github.com/go-drift/fomantic/pkg/table"
)

type invoice struct {
	Number   string
	Customer string
	Amount   float64
	Paid     bool
	Tags     []string
	cached   int
}

func TestKeyDeterminism(t *testing.T) {
	a := invoice{Number: "2024-001", Customer: "ACME", Amount: 99.5, Tags: []string{"eu"}}
	b := invoice{Number: "2024-001", Customer: "ACME", Amount: 99.5, Tags: []string{"eu"}}
	if table.KeyOf(a) != table.KeyOf(b) {
		t.Error("equal rows have different keys")
	}
	if table.KeyOf(&a) != table.KeyOf(a) {
		t.Error("pointer and value keys differ")
	}

	rows := []invoice{a, {Number: "2024-002", Amount: 12}, {Number: "2024-003", Paid: true}}
	first, second := table.Keys(rows), table.Keys(rows)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d key changed between passes", i)
		}
	}
}

func TestKeyNegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)

	a := invoice{Number: "Tea", Amount: 0}
	b := invoice{Number: "Tea", Amount: negZero}
	if a.Amount != b.Amount {
		t.Fatal("0 and -0 compare unequal")
	}
	if table.KeyOf(a) != table.KeyOf(b) {
		t.Error("-0 and +0 amounts got different keys")
	}
	if !math.Signbit(b.Amount) {
		t.Error("KeyOf modified the row")
	}

	type line struct {
		Price  *float64
		Deltas []float32
		Extra  any
		Rates  map[string]float64
		Phase  complex128
		Window [2]float64
	}
	zero := 0.0
	pos := line{Price: &zero, Deltas: []float32{1, 0}, Extra: 0.0, Rates: map[string]float64{"eu": 0}, Phase: complex(0, 0)}
	neg := line{
		Price:  &negZero,
		Deltas: []float32{1, float32(negZero)},
		Extra:  negZero,
		Rates:  map[string]float64{"eu": negZero},
		Phase:  complex(negZero, negZero),
		Window: [2]float64{0, negZero},
	}
	if table.KeyOf(pos) != table.KeyOf(neg) {
		t.Error("nested -0 values changed the key")
	}
	if !math.Signbit(float64(neg.Deltas[1])) || !math.Signbit(neg.Rates["eu"]) {
		t.Error("KeyOf modified nested values")
	}
}

func TestKeyDistinguishesFields(t *testing.T) {
	base := invoice{Number: "1", Customer: "ACME", Amount: 10}
	variants := map[string]invoice{
		"number":   {Number: "2", Customer: "ACME", Amount: 10},
		"customer": {Number: "1", Customer: "Initech", Amount: 10},
		"amount":   {Number: "1", Customer: "ACME", Amount: 11},
		"paid":     {Number: "1", Customer: "ACME", Amount: 10, Paid: true},
		"tags":     {Number: "1", Customer: "ACME", Amount: 10, Tags: []string{"x"}},
	}
	for name, v := range variants {
		if table.KeyOf(v) == table.KeyOf(base) {
			t.Errorf("%s: changed row kept its key", name)
		}
	}
}

func TestKeyIgnoresUnexportedAndTaggedFields(t *testing.T) {
	type row struct {
		ID    int
		Label string `hash:"ignore"`
		local string
	}
	a := row{ID: 1, Label: "a", local: "x"}
	b := row{ID: 1, Label: "b", local: "y"}
	if table.KeyOf(a) != table.KeyOf(b) {
		t.Error("ignored fields changed the key")
	}

	c := invoice{Number: "1", cached: 1}
	d := invoice{Number: "1", cached: 2}
	if table.KeyOf(c) != table.KeyOf(d) {
		t.Error("unexported field changed the key")
	}
}

func TestTryKeyOfUnhashable(t *testing.T) {
	type row struct {
		OnClick func()
	}
	if _, err := table.TryKeyOf(row{OnClick: func() {}}); err == nil {
		t.Fatal("TryKeyOf accepted a func field")
	}
	defer func() {
		if recover() == nil {
			t.Error("KeyOf did not panic on an unhashable row")
		}
	}()
	table.KeyOf(row{})
}

func TestKeyString(t *testing.T) {
	if got := table.Key(255).String(); got != "ff" {
		t.Errorf("String() = %q, want ff", got)
	}
}
