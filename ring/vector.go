package ring

// Vector is a length-k vector of normal-domain polynomials, k in
// {2,3,4} depending on the parameter set.
type Vector []Poly

// NTTVector is a length-k vector of NTT-domain polynomials.
type NTTVector []NTTPoly

// Matrix is a k x k matrix of NTT-domain polynomials, Matrix[i][j]
// addressed the way spec.md 4.5 derives A-hat[i][j].
type Matrix [][]NTTPoly

// NewVector allocates a zeroed length-k Vector.
func NewVector(k int) Vector { return make(Vector, k) }

// NewNTTVector allocates a zeroed length-k NTTVector.
func NewNTTVector(k int) NTTVector { return make(NTTVector, k) }

// NewMatrix allocates a zeroed k x k Matrix.
func NewMatrix(k int) Matrix {
	m := make(Matrix, k)
	for i := range m {
		m[i] = make([]NTTPoly, k)
	}
	return m
}

// NTT maps every coordinate of v into the NTT domain.
func (v Vector) NTT() NTTVector {
	out := make(NTTVector, len(v))
	for i, p := range v {
		out[i] = NTT(p)
	}
	return out
}

// InvNTT maps every coordinate of v back to the coefficient domain.
func (v NTTVector) InvNTT() Vector {
	out := make(Vector, len(v))
	for i, p := range v {
		out[i] = InvNTT(p)
	}
	return out
}

// Add returns v+w coordinate-wise.
func (v Vector) Add(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Add(w[i])
	}
	return out
}

// Add returns v+w coordinate-wise in the NTT domain.
func (v NTTVector) Add(w NTTVector) NTTVector {
	out := make(NTTVector, len(v))
	for i := range v {
		out[i] = v[i].Add(w[i])
	}
	return out
}

// Dot computes the NTT-domain inner product sum_i v[i] (x) w[i].
func (v NTTVector) Dot(w NTTVector) (r NTTPoly) {
	for i := range v {
		BaseMulAdd(&r, v[i], w[i])
	}
	return
}

// MulVec computes A . s (matrix-vector product) in the NTT domain: row
// i of the result is the dot product of row i of A with s.
func (a Matrix) MulVec(s NTTVector) NTTVector {
	k := len(a)
	out := make(NTTVector, k)
	for i := 0; i < k; i++ {
		out[i] = NTTVector(a[i]).Dot(s)
	}
	return out
}

// MulVecTranspose computes A^T . s: column j of A (row j of A^T) dotted
// with s, as K-PKE's Encrypt needs for u = A^T . y + e1 (spec.md 4.5).
func (a Matrix) MulVecTranspose(s NTTVector) NTTVector {
	k := len(a)
	out := make(NTTVector, k)
	col := make(NTTVector, k)
	for j := 0; j < k; j++ {
		for i := 0; i < k; i++ {
			col[i] = a[i][j]
		}
		out[j] = col.Dot(s)
	}
	return out
}

// Zeroize clears every coordinate of a secret-bearing vector.
func (v Vector) Zeroize() {
	for i := range v {
		v[i].Zeroize()
	}
}

// Zeroize clears every coordinate of a secret-bearing NTT vector.
func (v NTTVector) Zeroize() {
	for i := range v {
		v[i].Zeroize()
	}
}
