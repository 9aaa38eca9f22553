package decimal

import (
	"math"
	"testing"
)

func TestNewMoney(t *testing.T) {
	m, ok := NewMoney(12.34567)
	if !ok {
		t.Fatalf("expected finite value to convert")
	}
	if m.String() != "12.3457" {
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, ok := NewMoney(v); ok {
			t.Fatalf("expected %v to be rejected", v)
		}
	}
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Format() != "$123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m.Format())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		out    string
	}{
		{"2.344", 2, "2.3400"},
		{"2.345", 2, "2.3500"},
		{"-2.345", 2, "-2.3500"},
		{"1.23456", 3, "1.2350"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		got := m.Round(c.places).String()
		if got != c.out {
			t.Fatalf("round(%s, %d) got %s want %s", c.in, c.places, got, c.out)
		}
	}
}

func TestPerContract(t *testing.T) {
	m, _ := NewMoneyFromString("1.2345")
	if got := m.PerContract(100).Format(); got != "$123.45" {
		t.Fatalf("PerContract got %s", got)
	}
}

func TestFormat(t *testing.T) {
	m, _ := NewMoney(1234.5)
	if got := m.Format(); got != "$1234.50" {
		t.Fatalf("Format got %s", got)
	}
	if got := m.String(); got != "1234.5000" {
		t.Fatalf("String got %s", got)
	}
}
