package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestNewVector(t *testing.T) {
	v := NewVector(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("NewVector(1, 2) = %v; want (1, 2)", v)
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)" // Expecting rounding to 2 decimals based on implementation
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})
}

func TestVector_Products(t *testing.T) {
	v1 := Vector2D{1, 0}
	v2 := Vector2D{0, 1}

	t.Run("Dot", func(t *testing.T) {
		if got := v1.Dot(v2); got != 0 {
			t.Errorf("Dot orthogonal = %v; want 0", got)
		}
		if got := v1.Dot(Vector2D{2, 0}); got != 2 {
			t.Errorf("Dot parallel = %v; want 2", got)
		}
	})

	t.Run("Cross", func(t *testing.T) {
		if got := v1.Cross(v2); got != 1 {
			t.Errorf("Cross X,Y = %v; want 1", got)
		}
		if got := v1.Cross(Vector2D{2, 0}); got != 0 {
			t.Errorf("Cross parallel = %v; want 0", got)
		}
	})
}

func TestVector_Magnitude(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		want float64
	}{
		{"Unit X", Vector2D{1, 0}, 1},
		{"3-4-5 triangle", Vector2D{3, 4}, 5},
		{"Zero", Vector2D{0, 0}, 0},
		{"Negative components", Vector2D{-3, -4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Len(); !floatEquals(got, tt.want) {
				t.Errorf("%v.Len() = %v; want %v", tt.v, got, tt.want)
			}
			if got := tt.v.LenSqr(); !floatEquals(got, tt.want*tt.want) {
				t.Errorf("%v.LenSqr() = %v; want %v", tt.v, got, tt.want*tt.want)
			}
		})
	}
}

func TestVector_Normalize(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		got := Vector2D{3, 4}.Normalize()
		if !floatEquals(got.Len(), 1) {
			t.Errorf("Normalize length = %v; want 1", got.Len())
		}
		if !got.Eq(Vector2D{0.6, 0.8}) {
			t.Errorf("Normalize = %v; want (0.6, 0.8)", got)
		}
	})

	t.Run("Zero vector stays zero", func(t *testing.T) {
		got := Vector2D{}.Normalize()
		if !got.Eq(Vector2D{}) {
			t.Errorf("Normalize of zero = %v; want (0, 0)", got)
		}
	})
}

func TestVector_ClampLengthMax(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		max  float64
		want Vector2D
	}{
		{"Under the cap", Vector2D{1, 0}, 2, Vector2D{1, 0}},
		{"Over the cap", Vector2D{3, 4}, 1, Vector2D{0.6, 0.8}},
		{"Exactly at the cap", Vector2D{0, 5}, 5, Vector2D{0, 5}},
		{"Zero vector", Vector2D{}, 1, Vector2D{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.ClampLengthMax(tt.max); !got.Eq(tt.want) {
				t.Errorf("%v.ClampLengthMax(%v) = %v; want %v", tt.v, tt.max, got, tt.want)
			}
		})
	}
}

func TestVector_ClampLength(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		min, max float64
		wantLen  float64
	}{
		{"Within band", Vector2D{3, 0}, 1, 5, 3},
		{"Below min scales up", Vector2D{0.5, 0}, 1, 5, 1},
		{"Above max scales down", Vector2D{30, 40}, 1, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLength(tt.min, tt.max)
			if !floatEquals(got.Len(), tt.wantLen) {
				t.Errorf("%v.ClampLength(%v, %v).Len() = %v; want %v",
					tt.v, tt.min, tt.max, got.Len(), tt.wantLen)
			}
			// Direction must be preserved.
			if got.Normalize() != (Vector2D{}) && !got.Normalize().Eq(tt.v.Normalize()) {
				t.Errorf("ClampLength changed direction: %v -> %v", tt.v, got)
			}
		})
	}

	t.Run("Zero vector is untouched", func(t *testing.T) {
		if got := (Vector2D{}).ClampLength(1, 5); !got.Eq(Vector2D{}) {
			t.Errorf("ClampLength of zero = %v; want (0, 0)", got)
		}
	})
}

func TestVector_CosineSimilarity(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vector2D
		want   float64
	}{
		{"Same direction", Vector2D{1, 0}, Vector2D{5, 0}, 1},
		{"Opposite direction", Vector2D{1, 0}, Vector2D{-2, 0}, -1},
		{"Orthogonal", Vector2D{1, 0}, Vector2D{0, 3}, 0},
		{"One side stationary", Vector2D{0, 0}, Vector2D{1, 1}, 0},
		{"Both stationary", Vector2D{0, 0}, Vector2D{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.CosineSimilarity(tt.b)
			if math.IsNaN(got) {
				t.Fatalf("CosineSimilarity(%v, %v) is NaN", tt.a, tt.b)
			}
			if !floatEquals(got, tt.want) {
				t.Errorf("CosineSimilarity(%v, %v) = %v; want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVector_Angles(t *testing.T) {
	t.Run("Angle", func(t *testing.T) {
		if got := (Vector2D{0, 1}).Angle(); !floatEquals(got, math.Pi/2) {
			t.Errorf("Angle of +Y = %v; want Pi/2", got)
		}
	})

	t.Run("AngleBetween is signed", func(t *testing.T) {
		x := Vector2D{1, 0}
		y := Vector2D{0, 1}
		if got := x.AngleBetween(y); !floatEquals(got, math.Pi/2) {
			t.Errorf("AngleBetween(X, Y) = %v; want Pi/2", got)
		}
		if got := y.AngleBetween(x); !floatEquals(got, -math.Pi/2) {
			t.Errorf("AngleBetween(Y, X) = %v; want -Pi/2", got)
		}
	})
}

func TestVector_DistanceTo(t *testing.T) {
	a := Vector2D{0, 0}
	b := Vector2D{3, 4}
	if got := a.DistanceTo(b); !floatEquals(got, 5) {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
}
