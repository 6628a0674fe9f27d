/*
 * reaction.go, part of gostoich.
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

import "fmt"

//ReactionTerm is one species on one side of an equation, together with its
//stoichiometric coefficient and a catalyst flag. The coefficient starts at
//whatever the user declared (1 by default) and is overwritten by a
//successful Reaction.Balance. Catalyst terms keep their coefficient: they
//are excluded from the conservation matrix and from coefficient scaling,
//but preserved in the reaction.
type ReactionTerm struct {
	species     *Species
	coefficient int
	catalyst    bool
}

//Term returns a reaction term for the species, with coefficient 1.
func Term(s *Species) (*ReactionTerm, error) {
	return TermN(s, 1)
}

//TermN returns a reaction term for the species with the given starting
//coefficient, which must be positive.
func TermN(s *Species, coefficient int) (*ReactionTerm, error) {
	if s == nil {
		return nil, CError{string(ErrNilSpecies), []string{"TermN"}}
	}
	if coefficient < 1 {
		return nil, CError{fmt.Sprintf("%s: %d", ErrInvalidMultiplier, coefficient), []string{"TermN"}}
	}
	return &ReactionTerm{species: s, coefficient: coefficient}, nil
}

//Catalyst returns a reaction term marked as a catalyst. Its coefficient
//stays at 1 and the balancing engine ignores it entirely.
func Catalyst(s *Species) (*ReactionTerm, error) {
	if s == nil {
		return nil, CError{string(ErrNilSpecies), []string{"Catalyst"}}
	}
	return &ReactionTerm{species: s, coefficient: 1, catalyst: true}, nil
}

//Species returns the species of the term.
func (T *ReactionTerm) Species() *Species {
	return T.species
}

//Coefficient returns the current stoichiometric coefficient of the term.
func (T *ReactionTerm) Coefficient() int {
	return T.coefficient
}

//IsCatalyst returns whether the term is a catalyst.
func (T *ReactionTerm) IsCatalyst() bool {
	return T.catalyst
}

//Join collects terms into one side of an equation. It exists so building a
//reaction reads like writing it down:
//	r, err := stoich.React(stoich.Join(h2, o2), stoich.Join(h2o))
func Join(terms ...*ReactionTerm) []*ReactionTerm {
	return terms
}

//Reaction is one chemical equation: ordered reactant and product terms,
//plus the classification label once Classify has run. The only mutable
//state is the coefficient of each term, written exactly once by a
//successful Balance, and the cached label.
type Reaction struct {
	reactants []*ReactionTerm
	products  []*ReactionTerm
	rtype     ReactionType
	typed     bool
}

//React assembles a reaction from the two term lists. Each side needs at
//least one non-catalyst term.
func React(reactants, products []*ReactionTerm) (*Reaction, error) {
	if countNonCatalyst(reactants) == 0 || countNonCatalyst(products) == 0 {
		return nil, CError{string(ErrEmptyReaction), []string{"React"}}
	}
	for _, v := range append(append([]*ReactionTerm{}, reactants...), products...) {
		if v == nil || v.species == nil {
			return nil, CError{string(ErrNilSpecies), []string{"React"}}
		}
	}
	r := new(Reaction)
	r.reactants = make([]*ReactionTerm, len(reactants))
	copy(r.reactants, reactants)
	r.products = make([]*ReactionTerm, len(products))
	copy(r.products, products)
	return r, nil
}

func countNonCatalyst(terms []*ReactionTerm) int {
	n := 0
	for _, v := range terms {
		if v != nil && !v.catalyst {
			n++
		}
	}
	return n
}

//Reactants returns the reactant terms, in the order they were given. The
//slice is a copy, but the terms are the reaction's own.
func (R *Reaction) Reactants() []*ReactionTerm {
	ret := make([]*ReactionTerm, len(R.reactants))
	copy(ret, R.reactants)
	return ret
}

//Products returns the product terms, in the order they were given. The
//slice is a copy, but the terms are the reaction's own.
func (R *Reaction) Products() []*ReactionTerm {
	ret := make([]*ReactionTerm, len(R.products))
	copy(ret, R.products)
	return ret
}

//Type returns the classification label of the reaction, and whether the
//classifier has run on it yet.
func (R *Reaction) Type() (ReactionType, bool) {
	return R.rtype, R.typed
}
