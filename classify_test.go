/*
 * classify_test.go, part of gostoich.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySynthesis(Te *testing.T) {
	n2 := mustFormula(Te, map[string]int{"N": 2})
	h2 := mustFormula(Te, map[string]int{"H": 2})
	nh3 := mustFormula(Te, map[string]int{"N": 1, "H": 3})
	r := mustReact(Te, []*Species{n2, h2}, []*Species{nh3})
	require.NoError(Te, r.Balance())
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{1, 3}, reac)
	assert.Equal(Te, []int{2}, prod)
	assert.Equal(Te, Synthesis, r.Classify())

	rtype, ok := r.Type()
	assert.True(Te, ok)
	assert.Equal(Te, Synthesis, rtype)
}

func TestClassifyDecomposition(Te *testing.T) {
	h2o2 := mustFormula(Te, map[string]int{"H": 2, "O": 2})
	h2o := mustFormula(Te, map[string]int{"H": 2, "O": 1})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	r := mustReact(Te, []*Species{h2o2}, []*Species{h2o, o2})
	require.NoError(Te, r.Balance())
	assert.Equal(Te, Decomposition, r.Classify())
}

//TestClassifyCombustionBeatsShape: methane combustion has the two-reactant,
//two-product shape of a double displacement, but combustion takes
//precedence.
func TestClassifyCombustionBeatsShape(Te *testing.T) {
	ch4 := mustFormula(Te, map[string]int{"C": 1, "H": 4})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	co2 := mustFormula(Te, map[string]int{"C": 1, "O": 2})
	h2o := mustFormula(Te, map[string]int{"H": 2, "O": 1})
	r := mustReact(Te, []*Species{ch4, o2}, []*Species{co2, h2o})
	require.NoError(Te, r.Balance())
	reac, prod := coefficients(r)
	assert.Equal(Te, []int{1, 2}, reac)
	assert.Equal(Te, []int{1, 2}, prod)
	assert.Equal(Te, Combustion, r.Classify())
}

func TestClassifyDoubleDisplacement(Te *testing.T) {
	agno3 := mustFormula(Te, map[string]int{"Ag": 1, "N": 1, "O": 3})
	nacl := mustFormula(Te, map[string]int{"Na": 1, "Cl": 1})
	agcl := mustFormula(Te, map[string]int{"Ag": 1, "Cl": 1})
	nano3 := mustFormula(Te, map[string]int{"Na": 1, "N": 1, "O": 3})
	r := mustReact(Te, []*Species{agno3, nacl}, []*Species{agcl, nano3})
	require.NoError(Te, r.Balance())
	assert.Equal(Te, DoubleDisplacement, r.Classify())
}

func TestClassifyAcidBase(Te *testing.T) {
	hcl := mustFormula(Te, map[string]int{"H": 1, "Cl": 1})
	naoh := mustFormula(Te, map[string]int{"Na": 1, "O": 1, "H": 1})
	nacl := mustFormula(Te, map[string]int{"Na": 1, "Cl": 1})
	h2o := mustFormula(Te, map[string]int{"H": 2, "O": 1})
	r := mustReact(Te, []*Species{hcl, naoh}, []*Species{nacl, h2o})
	require.NoError(Te, r.Balance())
	assert.Equal(Te, AcidBase, r.Classify())
}

func TestClassifySingleDisplacement(Te *testing.T) {
	zn := mustFormula(Te, map[string]int{"Zn": 1})
	cuso4 := mustFormula(Te, map[string]int{"Cu": 1, "S": 1, "O": 4})
	znso4 := mustFormula(Te, map[string]int{"Zn": 1, "S": 1, "O": 4})
	cu := mustFormula(Te, map[string]int{"Cu": 1})
	r := mustReact(Te, []*Species{zn, cuso4}, []*Species{znso4, cu})
	require.NoError(Te, r.Balance())
	assert.Equal(Te, SingleDisplacement, r.Classify())
}

//TestClassifyRedoxNeedsCharges: without charge annotations the same swap is
//not called redox, per the explicit-charges-only rule.
func TestClassifyRedoxNeedsCharges(Te *testing.T) {
	fe, err := Element("Fe")
	require.NoError(Te, err)
	ce, err := Element("Ce")
	require.NoError(Te, err)

	charged := mustReact(Te,
		[]*Species{fe.WithCharge(2), ce.WithCharge(4)},
		[]*Species{fe.WithCharge(3), ce.WithCharge(3)})
	require.NoError(Te, charged.Balance())
	assert.Equal(Te, Redox, charged.Classify())

	neutral := mustReact(Te, []*Species{fe, ce}, []*Species{fe, ce})
	assert.NotEqual(Te, Redox, neutral.Classify())
}

func TestClassifyUnclassified(Te *testing.T) {
	//3 reactants, 2 products, nothing special: no rule matches
	h2 := mustFormula(Te, map[string]int{"H": 2})
	o2 := mustFormula(Te, map[string]int{"O": 2})
	n2 := mustFormula(Te, map[string]int{"N": 2})
	h2o := mustFormula(Te, map[string]int{"H": 2, "O": 1})
	nh3 := mustFormula(Te, map[string]int{"N": 1, "H": 3})
	r := mustReact(Te, []*Species{h2, o2, n2}, []*Species{h2o, nh3})
	assert.Equal(Te, Unclassified, r.Classify())
}

func TestReactionTypeStrings(Te *testing.T) {
	assert.Equal(Te, "combustion", Combustion.String())
	assert.Equal(Te, "decomposition", Decomposition.String())
	assert.Equal(Te, "synthesis", Synthesis.String())
	assert.Equal(Te, "redox", Redox.String())
	assert.Equal(Te, "acid-base", AcidBase.String())
	assert.Equal(Te, "double displacement", DoubleDisplacement.String())
	assert.Equal(Te, "single displacement", SingleDisplacement.String())
	assert.Equal(Te, "unclassified", Unclassified.String())
}
