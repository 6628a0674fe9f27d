/*
 * balance_test.go, part of gostoich.
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

package stoich

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//mustReact builds a reaction from species, coefficient 1 everywhere.
func mustReact(Te *testing.T, reactants, products []*Species) *Reaction {
	Te.Helper()
	var rterms, pterms []*ReactionTerm
	for _, s := range reactants {
		t, err := Term(s)
		require.NoError(Te, err)
		rterms = append(rterms, t)
	}
	for _, s := range products {
		t, err := Term(s)
		require.NoError(Te, err)
		pterms = append(pterms, t)
	}
	r, err := React(rterms, pterms)
	require.NoError(Te, err)
	return r
}

func coefficients(r *Reaction) (reac, prod []int) {
	for _, t := range r.Reactants() {
		reac = append(reac, t.Coefficient())
	}
	for _, t := range r.Products() {
		prod = append(prod, t.Coefficient())
	}
	return reac, prod
}

//checkConserved recomputes, from the public API, the conservation sums the
//balanced reaction must satisfy, for every element and for the charge.
func checkConserved(Te *testing.T, r *Reaction) {
	Te.Helper()
	sums := make(map[string]int64)
	var charge int64
	addSide := func(terms []*ReactionTerm, sign int64) {
		for _, t := range terms {
			if t.IsCatalyst() {
				continue
			}
			for symbol, n := range t.Species().Flatten() {
				sums[symbol] += sign * int64(t.Coefficient()) * n
			}
			charge += sign * int64(t.Coefficient()) * int64(t.Species().Charge())
		}
	}
	addSide(r.Reactants(), -1)
	addSide(r.Products(), 1)
	for symbol, sum := range sums {
		assert.Zero(Te, sum, "element %s not conserved", symbol)
	}
	assert.Zero(Te, charge, "charge not conserved")
}

func gcdInts(ns []int) int {
	g := 0
	for _, n := range ns {
		if n < 0 {
			n = -n
		}
		for n != 0 {
			g, n = n, g%n
		}
	}
	return g
}

//checkMinimal asserts the gcd of all non-catalyst coefficients is 1.
func checkMinimal(Te *testing.T, r *Reaction) {
	Te.Helper()
	var all []int
	for _, t := range append(r.Reactants(), r.Products()...) {
		if !t.IsCatalyst() {
			all = append(all, t.Coefficient())
		}
	}
	assert.Equal(Te, 1, gcdInts(all))
}

func TestBalanceWater(Te *testing.T) {
	h2 := mustFormula(Te, map[string]int{"H": 2})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	h2o := mustFormula(Te, map[string]int{"H": 2, "O": 1})
	r := mustReact(Te, []*Species{h2, o2}, []*Species{h2o})
	require.NoError(Te, r.Balance())
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{2, 1}, reac)
	assert.Equal(Te, []int{2}, prod)
	checkConserved(Te, r)
	checkMinimal(Te, r)
}

func TestBalanceIronOxide(Te *testing.T) {
	fe := mustFormula(Te, map[string]int{"Fe": 1})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	fe2o3 := mustFormula(Te, map[string]int{"Fe": 2, "O": 3})
	r := mustReact(Te, []*Species{fe, o2}, []*Species{fe2o3})
	require.NoError(Te, r.Balance())
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{4, 3}, reac)
	assert.Equal(Te, []int{2}, prod)
	checkConserved(Te, r)
	checkMinimal(Te, r)
}

func TestBalanceEthaneCombustion(Te *testing.T) {
	ethane := mustFormula(Te, map[string]int{"C": 2, "H": 6})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	co2 := mustFormula(Te, map[string]int{"C": 1, "O": 2})
	h2o := mustFormula(Te, map[string]int{"H": 2, "O": 1})
	r := mustReact(Te, []*Species{ethane, o2}, []*Species{co2, h2o})
	require.NoError(Te, r.Balance())
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{2, 7}, reac)
	assert.Equal(Te, []int{4, 6}, prod)
	checkConserved(Te, r)
	checkMinimal(Te, r)
	assert.Equal(Te, Combustion, r.Classify())
}

//TestBalanceIonic: Fe^2+ + Ce^4+ -> Fe^3+ + Ce^3+, already balanced with
//all coefficients 1 once the charge row is taken into account.
func TestBalanceIonic(Te *testing.T) {
	fe, err := Element("Fe")
	require.NoError(Te, err)
	ce, err := Element("Ce")
	require.NoError(Te, err)
	r := mustReact(Te,
		[]*Species{fe.WithCharge(2).WithPhase(Aqueous), ce.WithCharge(4).WithPhase(Aqueous)},
		[]*Species{fe.WithCharge(3).WithPhase(Aqueous), ce.WithCharge(3).WithPhase(Aqueous)})
	require.NoError(Te, r.Balance())
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{1, 1}, reac)
	assert.Equal(Te, []int{1, 1}, prod)
	checkConserved(Te, r)
	assert.Equal(Te, Redox, r.Classify())
}

//TestChargeRow: the same ionic equation must NOT balance 1:1 if the charge
//row is what decides; here Cu^2+ + Fe -> Cu + Fe^3+ needs 3:2.
func TestChargeRow(Te *testing.T) {
	cu, err := Element("Cu")
	require.NoError(Te, err)
	fe, err := Element("Fe")
	require.NoError(Te, err)
	r := mustReact(Te,
		[]*Species{cu.WithCharge(2), fe},
		[]*Species{cu, fe.WithCharge(3)})
	require.NoError(Te, r.Balance())
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{3, 2}, reac)
	assert.Equal(Te, []int{3, 2}, prod)
	checkConserved(Te, r)
	checkMinimal(Te, r)
}

func TestBalanceDecomposition(Te *testing.T) {
	kclo3 := mustFormula(Te, map[string]int{"K": 1, "Cl": 1, "O": 3})
	kcl := mustFormula(Te, map[string]int{"K": 1, "Cl": 1})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	r := mustReact(Te, []*Species{kclo3}, []*Species{kcl, o2})
	require.NoError(Te, r.Balance())
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{2}, reac)
	assert.Equal(Te, []int{2, 3}, prod)
	checkConserved(Te, r)
	checkMinimal(Te, r)
	assert.Equal(Te, Decomposition, r.Classify())
}

//TestCatalystExcluded: a catalyst term must keep coefficient 1, stay out of
//the matrix, and not break the balance.
func TestCatalystExcluded(Te *testing.T) {
	kclo3 := mustFormula(Te, map[string]int{"K": 1, "Cl": 1, "O": 3})
	kcl := mustFormula(Te, map[string]int{"K": 1, "Cl": 1})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	mno2 := mustFormula(Te, map[string]int{"Mn": 1, "O": 2})

	t1, err := Term(kclo3)
	require.NoError(Te, err)
	cat, err := Catalyst(mno2)
	require.NoError(Te, err)
	t2, err := Term(kcl)
	require.NoError(Te, err)
	t3, err := Term(o2)
	require.NoError(Te, err)
	r, err := React(Join(t1, cat), Join(t2, t3))
	require.NoError(Te, err)

	require.NoError(Te, r.Balance())
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{2, 1}, reac, "catalyst coefficient must stay 1")
	assert.Equal(Te, []int{2, 3}, prod)
	checkConserved(Te, r)
}

func TestBalanceIdempotent(Te *testing.T) {
	h2 := mustFormula(Te, map[string]int{"H": 2})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	h2o := mustFormula(Te, map[string]int{"H": 2, "O": 1})
	r := mustReact(Te, []*Species{h2, o2}, []*Species{h2o})
	require.NoError(Te, r.Balance())
	reac1, prod1 := coefficients(r)
	require.NoError(Te, r.Balance())
	reac2, prod2 := coefficients(r)
	assert.Equal(Te, reac1, reac2)
	assert.Equal(Te, prod1, prod2)
}

func TestUnbalanceable(Te *testing.T) {
	h2 := mustFormula(Te, map[string]int{"H": 2})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	r := mustReact(Te, []*Species{h2}, []*Species{o2})
	err := r.Balance()
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrUnbalanceable))
	//coefficients must be untouched
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{1}, reac)
	assert.Equal(Te, []int{1}, prod)
}

func TestNoPositiveSolution(Te *testing.T) {
	h2 := mustFormula(Te, map[string]int{"H": 2})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	r := mustReact(Te, []*Species{h2}, []*Species{h2, o2})
	err := r.Balance()
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrNoPositiveSolution))
}

//TestAmbiguousBalance: C + O2 -> CO + CO2 has two independent balances. The
//engine must still write a deterministic solution, and report the
//degeneracy.
func TestAmbiguousBalance(Te *testing.T) {
	c := mustFormula(Te, map[string]int{"C": 1})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	co := mustFormula(Te, map[string]int{"C": 1, "O": 1})
	co2 := mustFormula(Te, map[string]int{"C": 1, "O": 2})
	r := mustReact(Te, []*Species{c, o2}, []*Species{co, co2})
	err := r.Balance()
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrAmbiguousBalance))
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{4, 3}, reac)
	assert.Equal(Te, []int{2, 2}, prod)
	checkConserved(Te, r)
	checkMinimal(Te, r)

	//and a second call short-circuits on the now-conserved coefficients
	require.NoError(Te, r.Balance())
}

func TestConservationMatrix(Te *testing.T) {
	h2 := mustFormula(Te, map[string]int{"H": 2})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	h2o := mustFormula(Te, map[string]int{"H": 2, "O": 1})
	r := mustReact(Te, []*Species{h2, o2}, []*Species{h2o})
	M, rows := r.ConservationMatrix()
	require.Equal(Te, []string{"H", "O"}, rows)
	nr, nc := M.Dims()
	require.Equal(Te, 2, nr)
	require.Equal(Te, 3, nc)
	assert.Equal(Te, -2.0, M.At(0, 0))
	assert.Equal(Te, 0.0, M.At(0, 1))
	assert.Equal(Te, 2.0, M.At(0, 2))
	assert.Equal(Te, 0.0, M.At(1, 0))
	assert.Equal(Te, -2.0, M.At(1, 1))
	assert.Equal(Te, 1.0, M.At(1, 2))
}

func TestConservationMatrixChargeRow(Te *testing.T) {
	fe, err := Element("Fe")
	require.NoError(Te, err)
	ce, err := Element("Ce")
	require.NoError(Te, err)
	r := mustReact(Te,
		[]*Species{fe.WithCharge(2), ce.WithCharge(4)},
		[]*Species{fe.WithCharge(3), ce.WithCharge(3)})
	M, rows := r.ConservationMatrix()
	require.Equal(Te, []string{"Ce", "Fe", "charge"}, rows)
	//charge row: -2 -4 +3 +3
	assert.Equal(Te, -2.0, M.At(2, 0))
	assert.Equal(Te, -4.0, M.At(2, 1))
	assert.Equal(Te, 3.0, M.At(2, 2))
	assert.Equal(Te, 3.0, M.At(2, 3))
}
