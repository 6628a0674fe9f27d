/*
 * classify.go, part of gostoich.
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

//ReactionType is the classification label of a reaction.
type ReactionType int

//The reaction types the classifier can assign.
const (
	Unclassified ReactionType = iota
	Combustion
	Decomposition
	Synthesis
	Redox
	AcidBase
	DoubleDisplacement
	SingleDisplacement
)

//String returns the usual English name of the reaction type.
func (T ReactionType) String() string {
	switch T {
	case Combustion:
		return "combustion"
	case Decomposition:
		return "decomposition"
	case Synthesis:
		return "synthesis"
	case Redox:
		return "redox"
	case AcidBase:
		return "acid-base"
	case DoubleDisplacement:
		return "double displacement"
	case SingleDisplacement:
		return "single displacement"
	}
	return "unclassified"
}

//Classify inspects the reaction and assigns it a type, which is also
//returned. The rules are tried in a fixed order and the first match wins:
//combustion, decomposition, synthesis, redox, double displacement (refined
//to acid-base when a salt-plus-water pattern is recognized), single
//displacement, and Unclassified as the fallback. Classify never fails and
//never touches the terms or coefficients of the reaction; it only caches
//the label. Catalyst terms are ignored throughout. The reaction is normally
//balanced first, but nothing here depends on the coefficients.
//
//Redox is only detected from explicit charge annotations on the species
//(e.g. Fe^2+ -> Fe^3+). No oxidation states are inferred for neutral
//compounds.
func (R *Reaction) Classify() ReactionType {
	R.rtype = classify(R)
	R.typed = true
	return R.rtype
}

func classify(R *Reaction) ReactionType {
	reac := nonCatalyst(R.reactants)
	prod := nonCatalyst(R.products)
	switch {
	case isCombustion(reac, prod):
		return Combustion
	case len(reac) == 1 && len(prod) >= 2:
		return Decomposition
	case len(reac) >= 2 && len(prod) == 1:
		return Synthesis
	case isRedox(reac, prod):
		return Redox
	case len(reac) == 2 && len(prod) == 2 && isDoubleDisplacement(reac, prod):
		if isAcidBase(reac, prod) {
			return AcidBase
		}
		return DoubleDisplacement
	case isSingleDisplacement(reac, prod):
		return SingleDisplacement
	}
	return Unclassified
}

func nonCatalyst(terms []*ReactionTerm) []*ReactionTerm {
	ret := make([]*ReactionTerm, 0, len(terms))
	for _, t := range terms {
		if !t.catalyst {
			ret = append(ret, t)
		}
	}
	return ret
}

//isCombustion: exactly one reactant is elemental oxygen (only O, even atom
//count), some other reactant carries carbon, and both CO2 and H2O appear
//among the products.
func isCombustion(reac, prod []*ReactionTerm) bool {
	oxygens := 0
	carbon := false
	for _, t := range reac {
		f := t.species.Flatten()
		if n, ok := f["O"]; ok && len(f) == 1 && n%2 == 0 {
			oxygens++
			continue
		}
		if f["C"] > 0 {
			carbon = true
		}
	}
	if oxygens != 1 || !carbon {
		return false
	}
	co2, h2o := false, false
	for _, t := range prod {
		f := t.species.Flatten()
		if len(f) == 2 && f["C"] == 1 && f["O"] == 2 {
			co2 = true
		}
		if len(f) == 2 && f["H"] == 2 && f["O"] == 1 {
			h2o = true
		}
	}
	return co2 && h2o
}

//oxidationContexts collects, for every element that shows up as a
//single-element species, the set of per-atom charges it was annotated with
//on one side of the equation.
func oxidationContexts(terms []*ReactionTerm) map[string]map[int]bool {
	ctx := make(map[string]map[int]bool)
	for _, t := range terms {
		f := t.species.Flatten()
		if len(f) != 1 {
			continue
		}
		for symbol, n := range f {
			per := t.species.charge
			if n > 0 && int64(per)%n == 0 {
				per = int(int64(per) / n)
			}
			if ctx[symbol] == nil {
				ctx[symbol] = make(map[int]bool)
			}
			ctx[symbol][per] = true
		}
	}
	return ctx
}

//isRedox: some species carries an explicit charge, and for some element the
//charge annotations seen on the reactant side differ from those on the
//product side.
func isRedox(reac, prod []*ReactionTerm) bool {
	charged := false
	for _, t := range append(append([]*ReactionTerm{}, reac...), prod...) {
		if t.species.charge != 0 {
			charged = true
			break
		}
	}
	if !charged {
		return false
	}
	left := oxidationContexts(reac)
	right := oxidationContexts(prod)
	for symbol, lctx := range left {
		rctx, ok := right[symbol]
		if !ok {
			continue
		}
		if !sameIntSet(lctx, rctx) {
			return true
		}
	}
	return false
}

func sameIntSet(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

//isDoubleDisplacement: with two reactants and two products, every product
//must be a recombination, drawing elements from both reactants rather than
//being a subset of a single one.
func isDoubleDisplacement(reac, prod []*ReactionTerm) bool {
	f1 := reac[0].species.Flatten()
	f2 := reac[1].species.Flatten()
	for _, p := range prod {
		fp := p.species.Flatten()
		from1, from2 := false, false
		for symbol := range fp {
			if f1[symbol] > 0 {
				from1 = true
			}
			if f2[symbol] > 0 {
				from2 = true
			}
		}
		if !from1 || !from2 {
			return false
		}
	}
	return true
}

//isAcidBase recognizes the classic neutralization shape inside a double
//displacement: both reactants carry hydrogen and one product is water.
func isAcidBase(reac, prod []*ReactionTerm) bool {
	for _, t := range reac {
		if t.species.Flatten()["H"] == 0 {
			return false
		}
	}
	for _, p := range prod {
		f := p.species.Flatten()
		if len(f) == 2 && f["H"] == 2 && f["O"] == 1 {
			return true
		}
	}
	return false
}

//isSingleDisplacement: two reactants, exactly one of them elemental, whose
//element ends up inside a compound product.
func isSingleDisplacement(reac, prod []*ReactionTerm) bool {
	if len(reac) != 2 {
		return false
	}
	var elemental *ReactionTerm
	for _, t := range reac {
		if t.species.Elemental() {
			if elemental != nil {
				return false //two elemental reactants is a synthesis shape, not a swap
			}
			elemental = t
		}
	}
	if elemental == nil {
		return false
	}
	var symbol string
	for s := range elemental.species.Flatten() {
		symbol = s
	}
	for _, p := range prod {
		f := p.species.Flatten()
		if len(f) > 1 && f[symbol] > 0 {
			return true
		}
	}
	return false
}
