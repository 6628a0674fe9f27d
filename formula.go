/*
 * formula.go, part of gostoich.
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

//formula.go renders canonical, plain-ASCII formulas. The point is to give
//persistence layers a stable key (two species with the same flattened
//composition always render the same), not to typeset chemistry: subscripts,
//superscripts and the like are for external pretty-printers.

package stoich

import (
	"fmt"
	"sort"
	"strings"
)

//Formula returns the canonical Hill-order formula of the flattened
//composition: carbon first, then hydrogen, then everything else in
//alphabetical order; without carbon, everything goes alphabetically. Counts
//of one are omitted, as usual. Nesting is NOT preserved: Ba(OH)2 renders as
//BaH2O2.
func Formula(f Flattener) string {
	counts := f.Flatten()
	symbols := make([]string, 0, len(counts))
	for s := range counts {
		if s == "C" || (s == "H" && counts["C"] > 0) {
			continue
		}
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	if counts["C"] > 0 {
		if counts["H"] > 0 {
			symbols = append([]string{"C", "H"}, symbols...)
		} else {
			symbols = append([]string{"C"}, symbols...)
		}
	}
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s)
		if n := counts[s]; n > 1 {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	return b.String()
}

//Formula returns the canonical Hill-order formula of the species'
//composition. Charge and phase are not included; see String.
func (S *Species) Formula() string {
	return Formula(S.comp)
}

//chargeSuffix renders a net charge in the ASCII convention used across the
//library: ^+, ^-, ^2+, ^3-... and nothing for a neutral species.
func chargeSuffix(c int) string {
	if c == 0 {
		return ""
	}
	sign := "+"
	if c < 0 {
		sign = "-"
		c = -c
	}
	if c == 1 {
		return "^" + sign
	}
	return fmt.Sprintf("^%d%s", c, sign)
}

//String renders the species as formula, charge and phase, e.g. Fe^2+(aq) or
//H2O(l).
func (S *Species) String() string {
	return S.Formula() + chargeSuffix(S.charge) + S.phase.String()
}

//String renders the term as its species, preceded by the coefficient when
//it is not 1.
func (T *ReactionTerm) String() string {
	if T.coefficient == 1 {
		return T.species.String()
	}
	return fmt.Sprintf("%d %s", T.coefficient, T.species.String())
}

//String renders the equation in the usual arrow notation, e.g.
//	2 H2(g) + O2(g) -> 2 H2O(l)
//Catalyst terms are rendered like any other term.
func (R *Reaction) String() string {
	return joinTerms(R.reactants) + " -> " + joinTerms(R.products)
}

func joinTerms(terms []*ReactionTerm) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}
