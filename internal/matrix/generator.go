package matrix

// SystematicGenerator builds an n x k generator matrix G(k, n) whose top
// k rows are the identity matrix and whose bottom (n-k) rows are chosen
// such that every k-row submatrix of G is invertible over GF(256) (the
// MDS property). It starts from an n x k Vandermonde matrix V and
// right-multiplies it by the inverse of its top k x k block T (G = V *
// T^-1), which is square and
// always invertible since Vandermonde rows use distinct evaluation
// points.
func SystematicGenerator(k, n int) (Matrix, error) {
	vand := Vandermonde(n, k)

	top, err := vand.SubMatrix(0, 0, k, k)
	if err != nil {
		return nil, err
	}
	topInv, err := top.Invert()
	if err != nil {
		return nil, err
	}

	g := New(n, k)
	for i := 0; i < n; i++ {
		row, err := vand.SubMatrix(i, 0, 1, k)
		if err != nil {
			return nil, err
		}
		prod, err := row.Multiply(topInv)
		if err != nil {
			return nil, err
		}
		g[i] = prod[0]
	}
	return g, nil
}
