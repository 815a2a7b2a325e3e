package tensor

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestUnfold2D(t *testing.T) {
	d, err := NewDense(arangeData(6), Shape{2, 3})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	// Mode 0: rows of the matrix itself.
	u0, err := d.Unfold(0)
	if err != nil {
		t.Fatalf("Unfold(0) failed: %v", err)
	}
	want0 := [][]float64{{0, 1, 2}, {3, 4, 5}}
	checkMatrix(t, "Unfold(0)", u0, want0)

	// Mode 1: the transpose.
	u1, err := d.Unfold(1)
	if err != nil {
		t.Fatalf("Unfold(1) failed: %v", err)
	}
	want1 := [][]float64{{0, 3}, {1, 4}, {2, 5}}
	checkMatrix(t, "Unfold(1)", u1, want1)
}

func TestUnfold3D(t *testing.T) {
	d, err := NewDense(arangeData(8), Shape{2, 2, 2})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	// Remaining modes keep their original relative order in the columns.
	u1, err := d.Unfold(1)
	if err != nil {
		t.Fatalf("Unfold(1) failed: %v", err)
	}
	want := [][]float64{{0, 1, 4, 5}, {2, 3, 6, 7}}
	checkMatrix(t, "Unfold(1)", u1, want)
}

func TestUnfoldModeOutOfRange(t *testing.T) {
	d, err := NewDense(arangeData(6), Shape{2, 3})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	for _, mode := range []int{-1, 2} {
		if _, err := d.Unfold(mode); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("Unfold(%d) error = %v, want ErrDimensionMismatch", mode, err)
		}
	}
}

func TestFoldRoundTrip(t *testing.T) {
	shape := Shape{2, 3, 4}
	d, err := NewDense(arangeData(24), shape)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	for mode := 0; mode < d.Order(); mode++ {
		u, err := d.Unfold(mode)
		if err != nil {
			t.Fatalf("Unfold(%d) failed: %v", mode, err)
		}
		back, err := Fold(u, mode, shape)
		if err != nil {
			t.Fatalf("Fold(mode %d) failed: %v", mode, err)
		}
		orig := d.Data()
		for i, v := range back.Data() {
			if v != orig[i] {
				t.Errorf("mode %d round trip: element %d = %v, want %v", mode, i, v, orig[i])
				break
			}
		}
	}
}

func TestFoldShapeMismatch(t *testing.T) {
	m := mat.NewDense(2, 3, arangeData(6))
	if _, err := Fold(m, 0, Shape{3, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Fold error = %v, want ErrShapeMismatch", err)
	}
	if _, err := Fold(m, 2, Shape{2, 3}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Fold error = %v, want ErrDimensionMismatch", err)
	}
}

func TestModeProduct(t *testing.T) {
	d, err := NewDense([]float64{1, 2, 3, 4}, Shape{2, 2})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	// Summing matrix collapses mode 0 to a single row.
	m := mat.NewDense(1, 2, []float64{1, 1})
	r, err := ModeProduct(d, m, 0)
	if err != nil {
		t.Fatalf("ModeProduct failed: %v", err)
	}
	if !r.Shape().Equal(Shape{1, 2}) {
		t.Errorf("result shape = %v, want [1 2]", r.Shape())
	}
	got := r.Data()
	want := []float64{4, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result data = %v, want %v", got, want)
			break
		}
	}
}

func TestModeProductIdentity(t *testing.T) {
	d, err := NewDense(arangeData(24), Shape{2, 3, 4})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	for mode, n := range []int{2, 3, 4} {
		r, err := ModeProduct(d, Eye(n), mode)
		if err != nil {
			t.Fatalf("ModeProduct(Eye(%d), %d) failed: %v", n, mode, err)
		}
		orig := d.Data()
		for i, v := range r.Data() {
			if v != orig[i] {
				t.Errorf("identity mode product changed element %d: %v != %v", i, v, orig[i])
				break
			}
		}
	}
}

func TestModeProductKeepsModeNames(t *testing.T) {
	d, err := NewDense(arangeData(6), Shape{2, 3}, "time", "space")
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	r, err := ModeProduct(d, mat.NewDense(5, 2, arangeData(10)), 0)
	if err != nil {
		t.Fatalf("ModeProduct failed: %v", err)
	}
	names := r.ModeNames()
	if names[0] != "time" || names[1] != "space" {
		t.Errorf("ModeNames() = %v, want [time space]", names)
	}
}

func TestModeProductDimensionMismatch(t *testing.T) {
	d, err := NewDense(arangeData(6), Shape{2, 3})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	// 3 columns against mode 0 of size 2.
	m := mat.NewDense(2, 3, arangeData(6))
	if _, err := ModeProduct(d, m, 0); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("ModeProduct error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := ModeProduct(d, m, 5); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("ModeProduct error = %v, want ErrDimensionMismatch", err)
	}
}

func checkMatrix(t *testing.T, name string, m *mat.Dense, want [][]float64) {
	t.Helper()
	r, c := m.Dims()
	if r != len(want) || c != len(want[0]) {
		t.Errorf("%s: dims = %dx%d, want %dx%d", name, r, c, len(want), len(want[0]))
		return
	}
	for i := range want {
		for j := range want[i] {
			if got := m.At(i, j); got != want[i][j] {
				t.Errorf("%s: At(%d, %d) = %v, want %v", name, i, j, got, want[i][j])
			}
		}
	}
}
