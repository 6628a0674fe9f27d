/*
 * rational.go, part of gostoich.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goStoich is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//rational.go holds the exact linear algebra behind the balancing engine.
//Everything here works on big.Rat. Balancing with float64 looks fine on
//textbook equations but accumulates rounding on the ugly ones, and a
//stoichiometric coefficient that is off by one is not "approximately
//right", it is wrong, so the solver never touches floating point. The
//float64 world (gonum) only appears in balance.go, as an export format.

package stoich

import "math/big"

//ratMatrix is a dense matrix of rational numbers. It is only used
//internally, on the small conservation matrices produced by chemical
//equations, so no attention is paid to cache friendliness or allocation
//counts.
type ratMatrix struct {
	rows, cols int
	data       [][]*big.Rat
}

//newRatMatrix returns a zero-filled rows x cols rational matrix.
func newRatMatrix(rows, cols int) *ratMatrix {
	data := make([][]*big.Rat, rows)
	for i := range data {
		data[i] = make([]*big.Rat, cols)
		for j := range data[i] {
			data[i][j] = new(big.Rat)
		}
	}
	return &ratMatrix{rows: rows, cols: cols, data: data}
}

//set sets the i,j element to the integer n.
func (M *ratMatrix) set(i, j int, n int64) {
	M.data[i][j].SetInt64(n)
}

//at returns the i,j element. The returned value is the matrix's own, do not
//modify it.
func (M *ratMatrix) at(i, j int) *big.Rat {
	return M.data[i][j]
}

//rref reduces the matrix, in place, to reduced row-echelon form by
//Gauss-Jordan elimination with exact rational pivots, and returns the pivot
//column of each pivot row, in order.
func (M *ratMatrix) rref() []int {
	pivots := make([]int, 0, M.rows)
	row := 0
	for col := 0; col < M.cols && row < M.rows; col++ {
		sel := -1
		for i := row; i < M.rows; i++ {
			if M.data[i][col].Sign() != 0 {
				sel = i
				break
			}
		}
		if sel == -1 {
			continue //free column
		}
		M.data[row], M.data[sel] = M.data[sel], M.data[row]
		inv := new(big.Rat).Inv(M.data[row][col])
		for j := col; j < M.cols; j++ {
			M.data[row][j].Mul(M.data[row][j], inv)
		}
		tmp := new(big.Rat)
		for i := 0; i < M.rows; i++ {
			if i == row || M.data[i][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(M.data[i][col])
			for j := col; j < M.cols; j++ {
				tmp.Mul(factor, M.data[row][j])
				M.data[i][j].Sub(M.data[i][j], tmp)
			}
		}
		pivots = append(pivots, col)
		row++
	}
	return pivots
}

//nullSpace returns a basis for the right null space of the matrix, one
//vector per free column, ordered by free-column index. The matrix is
//reduced in place in the process. The ordering makes the first basis
//vector a deterministic choice for callers that need just one.
func (M *ratMatrix) nullSpace() [][]*big.Rat {
	pivots := M.rref()
	pivotOf := make(map[int]int, len(pivots)) //column -> pivot row
	for r, c := range pivots {
		pivotOf[c] = r
	}
	var basis [][]*big.Rat
	for col := 0; col < M.cols; col++ {
		if _, ok := pivotOf[col]; ok {
			continue
		}
		v := make([]*big.Rat, M.cols)
		for i := range v {
			v[i] = new(big.Rat)
		}
		v[col].SetInt64(1)
		for row, pcol := range pivots {
			v[pcol].Neg(M.data[row][col])
		}
		basis = append(basis, v)
	}
	return basis
}

//clearDenominators multiplies the vector by the least common multiple of
//its denominators, returning the resulting integer vector.
func clearDenominators(v []*big.Rat) []*big.Int {
	lcm := big.NewInt(1)
	tmp := new(big.Int)
	for _, r := range v {
		tmp.GCD(nil, nil, lcm, r.Denom())
		lcm.Div(new(big.Int).Mul(lcm, r.Denom()), tmp)
	}
	ints := make([]*big.Int, len(v))
	for i, r := range v {
		f := new(big.Int).Div(lcm, r.Denom())
		ints[i] = new(big.Int).Mul(r.Num(), f)
	}
	return ints
}

//reduceByGCD divides the vector, in place, by the greatest common divisor
//of the absolute values of its entries, giving the minimal integer vector
//with the same direction. An all-zero vector is returned unchanged.
func reduceByGCD(v []*big.Int) {
	gcd := new(big.Int)
	for _, n := range v {
		gcd.GCD(nil, nil, gcd, new(big.Int).Abs(n))
	}
	if gcd.Sign() == 0 || gcd.Cmp(big.NewInt(1)) == 0 {
		return
	}
	for _, n := range v {
		n.Div(n, gcd)
	}
}
