package stats

import (
	"errors"
	"math"
)

var errSingular = errors.New("singular regressor matrix")

// leastSquares runs an ordinary least squares regression of y on the rows of x
// and returns the coefficients with their standard errors.
func leastSquares(x [][]float64, y []float64) (coeffs, stdErrs []float64, err error) {
	n := len(y)
	if n == 0 || len(x) != n {
		return nil, nil, errors.New("empty or mismatched regression inputs")
	}
	k := len(x[0])
	if n <= k {
		return nil, nil, errors.New("more regressors than observations")
	}

	// Build X'X and X'y.
	xtx := make([][]float64, k)
	for i := range xtx {
		xtx[i] = make([]float64, k)
	}
	xty := make([]float64, k)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			xty[j] += x[i][j] * y[i]
			for l := 0; l < k; l++ {
				xtx[j][l] += x[i][j] * x[i][l]
			}
		}
	}

	xtxInv, err := invertMatrix(xtx)
	if err != nil {
		return nil, nil, err
	}

	// beta = (X'X)^-1 X'y
	coeffs = make([]float64, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			coeffs[i] += xtxInv[i][j] * xty[j]
		}
	}

	sse := 0.0
	for i := 0; i < n; i++ {
		pred := 0.0
		for j := 0; j < k; j++ {
			pred += coeffs[j] * x[i][j]
		}
		resid := y[i] - pred
		sse += resid * resid
	}

	s2 := sse / float64(n-k)
	stdErrs = make([]float64, k)
	for i := 0; i < k; i++ {
		stdErrs[i] = math.Sqrt(s2 * xtxInv[i][i])
	}
	return coeffs, stdErrs, nil
}

// invertMatrix inverts a square matrix by Gauss-Jordan elimination with
// partial pivoting.
func invertMatrix(m [][]float64) ([][]float64, error) {
	n := len(m)
	if n == 0 {
		return nil, errSingular
	}

	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		copy(aug[i][:n], m[i])
		aug[i][n+i] = 1
	}

	for i := 0; i < n; i++ {
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(aug[k][i]) > math.Abs(aug[maxRow][i]) {
				maxRow = k
			}
		}
		aug[i], aug[maxRow] = aug[maxRow], aug[i]

		if math.Abs(aug[i][i]) < 1e-10 {
			return nil, errSingular
		}

		pivot := aug[i][i]
		for j := 0; j < 2*n; j++ {
			aug[i][j] /= pivot
		}
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			factor := aug[k][i]
			for j := 0; j < 2*n; j++ {
				aug[k][j] -= factor * aug[i][j]
			}
		}
	}

	inv := make([][]float64, n)
	for i := 0; i < n; i++ {
		inv[i] = make([]float64, n)
		copy(inv[i], aug[i][n:])
	}
	return inv, nil
}
