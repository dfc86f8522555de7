package forecast

import (
	"errors"
	"math"
)

// ErrSingularMatrix indica que o sistema linear não tem solução única
var ErrSingularMatrix = errors.New("forecast: matriz singular")

const pivotEpsilon = 1e-12

// Solve resolve Ax = b por eliminação de Gauss com pivotamento parcial.
// A e b não são alterados.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(a) != n {
		return nil, errors.New("forecast: dimensões incompatíveis")
	}

	// Matriz aumentada [A | b]
	aug := make([][]float64, n)
	for i := range a {
		if len(a[i]) != n {
			return nil, errors.New("forecast: matriz não quadrada")
		}
		aug[i] = make([]float64, n+1)
		copy(aug[i], a[i])
		aug[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(aug[r][col]) > math.Abs(aug[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(aug[pivot][col]) < pivotEpsilon {
			return nil, ErrSingularMatrix
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		for r := col + 1; r < n; r++ {
			factor := aug[r][col] / aug[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}

	return x, nil
}

// ZScore retorna o quantil da normal padrão para um intervalo central de cobertura width
func ZScore(width float64) float64 {
	if width <= 0 {
		return 0
	}
	if width >= 1 {
		return math.Inf(1)
	}
	return math.Sqrt2 * math.Erfinv(width)
}
