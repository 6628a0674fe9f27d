/*
 * balance.go, part of gostoich.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

//chargeRow is the label used for the net-charge pseudo-row of the
//conservation matrix.
const chargeRow = "charge"

//signedTerms returns every non-catalyst term of the reaction, reactants
//first, together with the sign of its side (-1 reactants, +1 products).
func (R *Reaction) signedTerms() ([]*ReactionTerm, []int64) {
	var terms []*ReactionTerm
	var signs []int64
	for _, t := range R.reactants {
		if !t.catalyst {
			terms = append(terms, t)
			signs = append(signs, -1)
		}
	}
	for _, t := range R.products {
		if !t.catalyst {
			terms = append(terms, t)
			signs = append(signs, 1)
		}
	}
	return terms, signs
}

//elementRows returns the sorted distinct element symbols spanned by the
//given terms, plus the charge pseudo-row if any term carries a nonzero
//charge.
func elementRows(terms []*ReactionTerm) []string {
	seen := make(map[string]bool)
	charged := false
	for _, t := range terms {
		for symbol := range t.species.Flatten() {
			seen[symbol] = true
		}
		if t.species.charge != 0 {
			charged = true
		}
	}
	rows := make([]string, 0, len(seen)+1)
	for symbol := range seen {
		rows = append(rows, symbol)
	}
	sort.Strings(rows)
	if charged {
		rows = append(rows, chargeRow)
	}
	return rows
}

//entry returns the signed conservation-matrix entry for one term and one
//row label (an element symbol, or chargeRow).
func entry(row string, t *ReactionTerm, sign int64) int64 {
	if row == chargeRow {
		return sign * int64(t.species.charge)
	}
	return sign * t.species.Flatten()[row]
}

//ConservationMatrix returns the conservation matrix of the reaction as a
//float64 gonum matrix, for storage or display by external consumers, along
//with the row labels (element symbols in lexicographic order, plus "charge"
//last when some species is charged). Columns are the non-catalyst terms,
//reactants first, with reactant entries negated. The balancing engine does
//NOT use this matrix: it solves in exact rational arithmetic.
func (R *Reaction) ConservationMatrix() (*mat.Dense, []string) {
	terms, signs := R.signedTerms()
	rows := elementRows(terms)
	M := mat.NewDense(len(rows), len(terms), nil)
	for i, row := range rows {
		for j, t := range terms {
			M.Set(i, j, float64(entry(row, t, signs[j])))
		}
	}
	return M, rows
}

//conserved returns whether the current coefficients of the reaction already
//satisfy conservation of every element and of the net charge.
func (R *Reaction) conserved() bool {
	terms, signs := R.signedTerms()
	for _, row := range elementRows(terms) {
		var sum int64
		for j, t := range terms {
			sum += int64(t.coefficient) * entry(row, t, signs[j])
		}
		if sum != 0 {
			return false
		}
	}
	return true
}

//Balance computes the minimal positive integer stoichiometric coefficients
//that conserve every element, and the net charge if any species is charged,
//and writes them onto the reaction's terms. Catalyst terms are left alone
//and take no part in the computation.
//
//Balance is idempotent: on a reaction whose coefficients already satisfy
//conservation it returns at once, without touching anything. It is the only
//operation in the library that writes to its receiver, and that write is
//not synchronized, so do not call Balance on the same Reaction from two
//goroutines (balancing different Reactions concurrently is fine).
//
//The solver runs entirely in exact rational arithmetic. On failure the
//coefficients are left as they were and one of ErrUnbalanceable or
//ErrNoPositiveSolution is returned (via errors.Is). A degenerate equation
//with more than one independent balance is still balanced, with a
//deterministic choice of solution, but ErrAmbiguousBalance is returned so
//the caller can decide whether to warn; the coefficients ARE written in
//that case.
func (R *Reaction) Balance() error {
	if R.conserved() {
		return nil
	}
	terms, signs := R.signedTerms()
	rows := elementRows(terms)
	M := newRatMatrix(len(rows), len(terms))
	for i, row := range rows {
		for j, t := range terms {
			M.set(i, j, entry(row, t, signs[j]))
		}
	}
	basis := M.nullSpace()
	if len(basis) == 0 {
		return CError{string(ErrUnbalanceable), []string{"Balance"}}
	}
	//With one degree of freedom (the normal case) the basis vector is the
	//solution. A larger null space means a degenerate equation; the
	//deterministic default is then the solution with every free variable set
	//to 1, i.e. the sum of the basis vectors. Each single basis vector has a
	//zero at every other free column, so none of them alone can give the
	//all-positive coefficients a physical equation needs.
	candidate := basis[0]
	for _, v := range basis[1:] {
		for i := range candidate {
			candidate[i].Add(candidate[i], v[i])
		}
	}
	coefs := clearDenominators(candidate)
	//A valid balance needs every coefficient strictly positive. The basis
	//vector is only defined up to sign, so a consistently negative vector is
	//just flipped.
	neg := 0
	for _, n := range coefs {
		if n.Sign() < 0 {
			neg++
		}
	}
	if neg == len(coefs) {
		for _, n := range coefs {
			n.Neg(n)
		}
	}
	for _, n := range coefs {
		if n.Sign() <= 0 {
			return CError{string(ErrNoPositiveSolution), []string{"Balance"}}
		}
	}
	reduceByGCD(coefs)
	for _, n := range coefs {
		if !n.IsInt64() {
			return CError{"gostoich: balancing coefficients do not fit an int64", []string{"Balance"}}
		}
	}
	old := make([]int, len(terms))
	for j, t := range terms {
		old[j] = t.coefficient
		t.coefficient = int(coefs[j].Int64())
	}
	if !R.conserved() {
		//Unreachable if the null-space computation is correct. Still, a
		//silently wrong balance is worse than an ugly error, so the write is
		//undone and the defect reported.
		for j, t := range terms {
			t.coefficient = old[j]
		}
		return CError{string(ErrBalanceVerification), []string{"Balance"}}
	}
	if len(basis) > 1 {
		return CError{string(ErrAmbiguousBalance), []string{"Balance"}}
	}
	return nil
}
