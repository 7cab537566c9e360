package euclid

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

// near reports whether a and b differ by at most tol.
func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// nearVector reports whether got and want have the same dimension and
// every coordinate pair differs by at most tol.
func nearVector(got, want Vector, tol float64) bool {
	if got.Dimension() != want.Dimension() {
		return false
	}
	for i := 0; i < got.Dimension(); i++ {
		if !near(got.At(i), want.At(i), tol) {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	v, err := New([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Dimension() != 3 {
		t.Errorf("dimension: got %d, want 3", v.Dimension())
	}
	if !near(v.Magnitude(), math.Sqrt(14), tolerance) {
		t.Errorf("magnitude: got %v, want %v", v.Magnitude(), math.Sqrt(14))
	}
}

func TestNew_Empty(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		_, err := New([]float64{})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		_, err := New(nil)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("no variadic args", func(t *testing.T) {
		_, err := Of()
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestNew_CopiesInput(t *testing.T) {
	input := []float64{1, 2}
	v, err := New(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input[0] = 99
	if v.At(0) != 1 {
		t.Errorf("vector shares caller slice: got %v, want 1", v.At(0))
	}
	if v.Magnitude() != math.Sqrt(5) {
		t.Errorf("magnitude changed: got %v", v.Magnitude())
	}
}

func TestCoordinates_ReturnsCopy(t *testing.T) {
	v := MustNew(3, 4)
	coords := v.Coordinates()
	coords[0] = -1

	if v.At(0) != 3 {
		t.Errorf("Coordinates exposed internal slice: got %v, want 3", v.At(0))
	}
	if len(coords) != 2 {
		t.Errorf("len: got %d, want 2", len(coords))
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for empty coordinates")
		}
	}()
	MustNew()
}

func TestZero(t *testing.T) {
	z, err := Zero(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Dimension() != 4 {
		t.Errorf("dimension: got %d, want 4", z.Dimension())
	}
	if !z.IsZero() {
		t.Error("expected zero vector")
	}
	if !z.Equal(MustNew(0, 0, 0, 0)) {
		t.Errorf("got %v, want all zeros", z)
	}

	for _, d := range []int{0, -1} {
		if _, err := Zero(d); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Zero(%d): expected ErrInvalidArgument, got %v", d, err)
		}
	}
}

func TestMagnitude_MatchesMagnitudeOf(t *testing.T) {
	vectors := []Vector{
		MustNew(-0.221, 7.437),
		MustNew(8.813, -1.331, -6.247),
		MustNew(0),
		MustNew(1e150, 1e150),
	}
	for _, v := range vectors {
		if v.Magnitude() != v.MagnitudeOf() {
			t.Errorf("%v: stored %v, recomputed %v", v, v.Magnitude(), v.MagnitudeOf())
		}
		if v.Magnitude() < 0 {
			t.Errorf("%v: negative magnitude %v", v, v.Magnitude())
		}
	}
}

func TestNorm(t *testing.T) {
	if got := Norm([]float64{3, 4}); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
	if got := Norm(nil); got != 0 {
		t.Errorf("empty: got %v, want 0", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want bool
	}{
		{"identical", MustNew(1, 2, 3), MustNew(1, 2, 3), true},
		{"different value", MustNew(1, 2, 3), MustNew(1, 2, 4), false},
		{"different dimension", MustNew(1, 2), MustNew(1, 2, 0), false},
		{"single", MustNew(-0.5), MustNew(-0.5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("reverse: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Vector
		want string
	}{
		{MustNew(8.218, -9.314), "Vector: (8.218, -9.314)"},
		{MustNew(1, 0, -2), "Vector: (1, 0, -2)"},
		{MustNew(0.5), "Vector: (0.5)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
