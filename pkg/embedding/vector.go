package embedding

import "math"

// Vector is the tagged union of the two embedding shapes the system produces:
// a dense fixed-length vector (remote models) or a sparse token->count map
// (the offline frequency provider). Exactly one side is populated.
type Vector struct {
	Dense  []float32          `json:"dense,omitempty"`
	Sparse map[string]float64 `json:"sparse,omitempty"`
}

func NewDense(values []float32) Vector {
	return Vector{Dense: values}
}

func NewSparse(counts map[string]float64) Vector {
	return Vector{Sparse: counts}
}

func (v Vector) IsSparse() bool {
	return v.Sparse != nil
}

func (v Vector) IsDense() bool {
	return v.Dense != nil
}

// IsZero reports whether the vector has no magnitude.
func (v Vector) IsZero() bool {
	for _, x := range v.Dense {
		if x != 0 {
			return false
		}
	}
	for _, x := range v.Sparse {
		if x != 0 {
			return false
		}
	}
	return true
}

// Cosine computes cosine similarity between two vectors of any shape.
// Ranking must stay total: mismatched shapes, mismatched dense lengths and
// zero-norm vectors all yield 0 instead of an error or NaN.
func Cosine(a, b Vector) float64 {
	switch {
	case a.IsSparse() && b.IsSparse():
		return cosineSparse(a.Sparse, b.Sparse)
	case a.IsDense() && b.IsDense():
		return cosineDense(a.Dense, b.Dense)
	default:
		return 0
	}
}

func cosineSparse(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for key, av := range a {
		normA += av * av
		if bv, ok := b[key]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func cosineDense(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
