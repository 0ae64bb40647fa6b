package embedding

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestCosineDense(t *testing.T) {
	tests := []struct {
		name string
		a    Vector
		b    Vector
		want float64
	}{
		{
			name: "identical vectors",
			a:    NewDense([]float32{1, 2, 3}),
			b:    NewDense([]float32{1, 2, 3}),
			want: 1,
		},
		{
			name: "orthogonal vectors",
			a:    NewDense([]float32{1, 0}),
			b:    NewDense([]float32{0, 1}),
			want: 0,
		},
		{
			name: "opposite vectors",
			a:    NewDense([]float32{1, 0}),
			b:    NewDense([]float32{-1, 0}),
			want: -1,
		},
		{
			name: "length mismatch",
			a:    NewDense([]float32{1, 2, 3}),
			b:    NewDense([]float32{1, 2}),
			want: 0,
		},
		{
			name: "zero norm",
			a:    NewDense([]float32{0, 0, 0}),
			b:    NewDense([]float32{1, 2, 3}),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSparse(t *testing.T) {
	tests := []struct {
		name string
		a    Vector
		b    Vector
		want float64
	}{
		{
			name: "identical maps",
			a:    NewSparse(map[string]float64{"cat": 2, "mat": 1}),
			b:    NewSparse(map[string]float64{"cat": 2, "mat": 1}),
			want: 1,
		},
		{
			name: "disjoint keys",
			a:    NewSparse(map[string]float64{"cat": 1}),
			b:    NewSparse(map[string]float64{"dog": 1}),
			want: 0,
		},
		{
			name: "empty map",
			a:    NewSparse(map[string]float64{}),
			b:    NewSparse(map[string]float64{"dog": 1}),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineMixedShapesIsZero(t *testing.T) {
	dense := NewDense([]float32{1, 2, 3})
	sparse := NewSparse(map[string]float64{"cat": 1})

	if got := Cosine(dense, sparse); got != 0 {
		t.Errorf("Cosine(dense, sparse) = %v, want 0", got)
	}
	if got := Cosine(sparse, dense); got != 0 {
		t.Errorf("Cosine(sparse, dense) = %v, want 0", got)
	}
}

func TestCosinePartialSparseOverlap(t *testing.T) {
	a := NewSparse(map[string]float64{"cat": 1, "sat": 1})
	b := NewSparse(map[string]float64{"cat": 1, "mat": 1})

	got := Cosine(a, b)
	want := 0.5 // dot 1 over norms sqrt(2)*sqrt(2)
	if math.Abs(got-want) > epsilon {
		t.Errorf("Cosine() = %v, want %v", got, want)
	}
}

func TestVectorShape(t *testing.T) {
	dense := NewDense([]float32{1})
	if !dense.IsDense() || dense.IsSparse() {
		t.Error("dense vector misreports its shape")
	}

	sparse := NewSparse(map[string]float64{"a": 1})
	if !sparse.IsSparse() || sparse.IsDense() {
		t.Error("sparse vector misreports its shape")
	}

	if !NewDense([]float32{0, 0}).IsZero() {
		t.Error("all-zero dense vector should be zero")
	}
	if NewSparse(map[string]float64{"a": 1}).IsZero() {
		t.Error("non-empty sparse vector should not be zero")
	}
}
