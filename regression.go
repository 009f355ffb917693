package vif

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultRankTolerance is the singular value cutoff, relative to the largest one, below which a direction is treated as absent.
	DefaultRankTolerance = 1e-12
	// DefaultPerfectFitTolerance is the residual share of the total variation below which a fit is treated as exact.
	DefaultPerfectFitTolerance = 1e-12
)

// ErrInvalidArgument signals that any of given arguments to call the function was invalid.
var ErrInvalidArgument = errors.New("invalid argument")

// Fitter regresses one design column on all the others and reports the coefficient of determination.
type Fitter interface {
	RSquared(d *Design, target int) (float64, error)
}

// OLS is the ordinary least squares Fitter.
//
// The regression is solved through the singular value decomposition of the
// regressors, so the minimum norm solution is used when they are rank deficient
// instead of failing. R² is centered when the regressors span a constant,
// and uncentered otherwise.
type OLS struct {
	RankTolerance       float64
	PerfectFitTolerance float64
}

// NewOLS returns an OLS fitter with the default tolerances.
func NewOLS() *OLS {
	return &OLS{
		RankTolerance:       DefaultRankTolerance,
		PerfectFitTolerance: DefaultPerfectFitTolerance,
	}
}

// RSquared regresses column target of d on the remaining columns.
// It returns NaN when the target has no variation to explain and 1 when the fit is exact.
func (o *OLS) RSquared(d *Design, target int) (float64, error) {
	if target < 0 || target >= d.NumCols() {
		return math.NaN(), fmt.Errorf("target column %d of %d: %w", target, d.NumCols(), ErrInvalidArgument)
	}
	if d.numRows == 0 {
		return math.NaN(), nil
	}

	y := d.columns[target]
	predictedVals := make([]float64, d.numRows)
	centered := false
	if x := d.denseExcept(target); x != nil {
		var err error
		if predictedVals, err = o.predict(x, y); err != nil {
			return math.NaN(), err
		}
		if centered, err = o.hasConstant(x); err != nil {
			return math.NaN(), err
		}
	}

	// 残差変動
	residuals := make([]float64, d.numRows)
	floats.SubTo(residuals, y, predictedVals)
	unexplainedVariation := floats.Dot(residuals, residuals)

	// 全変動（定数項を含むときは平均からの偏差、含まないときは原点からの偏差）
	var totalVariation float64
	if centered {
		mean := stat.Mean(y, nil)
		for _, v := range y {
			totalVariation += (v - mean) * (v - mean)
		}
	} else {
		totalVariation = floats.Dot(y, y)
	}

	if totalVariation == 0 {
		return math.NaN(), nil
	}
	if unexplainedVariation <= o.perfectFitTolerance()*totalVariation {
		return 1, nil
	}

	// 決定係数
	return 1 - unexplainedVariation/totalVariation, nil
}

// predict fits y on x and returns the predicted values.
func (o *OLS) predict(x *mat.Dense, y []float64) ([]float64, error) {
	numOfObservations, _ := x.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, ErrFactorization
	}
	rank := svd.Rank(o.rankTolerance())
	if rank == 0 {
		// すべての説明変数が0のとき予測値も0
		return make([]float64, numOfObservations), nil
	}

	coeffs := new(mat.Dense)
	svd.SolveTo(coeffs, mat.NewDense(numOfObservations, 1, append([]float64(nil), y...)), rank)

	predicted := new(mat.Dense)
	predicted.Mul(x, coeffs)
	return mat.Col(nil, 0, predicted), nil
}

// hasConstant reports whether the columns of x span a constant: either one
// of them is a non-zero constant, or appending a column of ones does not raise the rank.
func (o *OLS) hasConstant(x *mat.Dense) (bool, error) {
	numOfObservations, numOfCols := x.Dims()
	for j := 0; j < numOfCols; j++ {
		if isNonzeroConstant(mat.Col(nil, j, x)) {
			return true, nil
		}
	}

	augmented := mat.NewDense(numOfObservations, numOfCols+1, nil)
	ones := make([]float64, numOfObservations)
	floats.AddConst(1, ones)
	augmented.SetCol(0, ones)
	augmented.Slice(0, numOfObservations, 1, numOfCols+1).(*mat.Dense).Copy(x)

	rankOrig, err := o.rank(x)
	if err != nil {
		return false, err
	}
	rankAugmented, err := o.rank(augmented)
	if err != nil {
		return false, err
	}
	return rankOrig == rankAugmented, nil
}

func (o *OLS) rank(m *mat.Dense) (int, error) {
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDNone); !ok {
		return 0, ErrFactorization
	}
	return svd.Rank(o.rankTolerance()), nil
}

func (o *OLS) rankTolerance() float64 {
	if o == nil || o.RankTolerance <= 0 {
		return DefaultRankTolerance
	}
	return o.RankTolerance
}

func (o *OLS) perfectFitTolerance() float64 {
	if o == nil || o.PerfectFitTolerance <= 0 {
		return DefaultPerfectFitTolerance
	}
	return o.PerfectFitTolerance
}
