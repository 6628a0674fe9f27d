/*
 * species.go, part of gostoich.
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

//Phase is the physical phase tag of a species.
type Phase int

//The phases a species can be in. NoPhase is the zero value: no phase has
//been assigned.
const (
	NoPhase Phase = iota
	Solid
	Liquid
	Gas
	Aqueous
)

//String returns the conventional parenthesized abbreviation for the phase,
//or an empty string for NoPhase.
func (P Phase) String() string {
	switch P {
	case Solid:
		return "(s)"
	case Liquid:
		return "(l)"
	case Gas:
		return "(g)"
	case Aqueous:
		return "(aq)"
	}
	return ""
}

//Species is one chemical species: a composition, a net charge (0 for a
//neutral species) and an optional phase tag. A Species is immutable; every
//operation returns a new value, so species can be shared freely. The
//composition tree may be shared between the input and output of an
//operation, which is safe because composition nodes are never mutated.
type Species struct {
	comp   *CompositionNode
	charge int
	phase  Phase
}

//NewSpecies returns a species with the given composition, charge and phase.
//The composition must not be nil.
func NewSpecies(comp *CompositionNode, charge int, phase Phase) (*Species, error) {
	if comp == nil {
		return nil, CError{string(ErrNilSpecies), []string{"NewSpecies"}}
	}
	return &Species{comp: comp, charge: charge, phase: phase}, nil
}

//Element returns a neutral, phase-less species of a single atom of the
//element with the given symbol. It is the usual starting point to build
//anything: molecules are put together from elements with Combine, Scale and
//AddGroup. It returns an error if the symbol is not in the atomic data.
func Element(symbol string) (*Species, error) {
	leaf, err := NewLeaf(symbol, 1)
	if err != nil {
		return nil, errDecorate(err, "Element")
	}
	return &Species{comp: leaf}, nil
}

//Combine returns the species formed by putting a and b together: the new
//composition contains both compositions, and the new charge is the sum of
//both charges. The phase of the result is always unset, and has to be
//assigned explicitly afterwards, if wanted. Combining two species that carry
//different explicit phases is an error.
func Combine(a, b *Species) (*Species, error) {
	if a == nil || b == nil {
		return nil, CError{string(ErrNilSpecies), []string{"Combine"}}
	}
	if a.phase != NoPhase && b.phase != NoPhase && a.phase != b.phase {
		return nil, CError{fmt.Sprintf("%s: %s vs %s", ErrPhaseConflict, a.phase, b.phase), []string{"Combine"}}
	}
	comp, err := NewGroup(1, a.comp, b.comp)
	if err != nil {
		return nil, errDecorate(err, "Combine")
	}
	return &Species{comp: comp, charge: a.charge + b.charge}, nil
}

//Scale returns the species repeated n times: the composition is wrapped in
//a group with multiplier n and the charge is multiplied by n. The phase is
//kept. Scaling by zero or a negative number is an error, never clamped.
func Scale(s *Species, n int) (*Species, error) {
	if s == nil {
		return nil, CError{string(ErrNilSpecies), []string{"Scale"}}
	}
	comp, err := NewGroup(n, s.comp)
	if err != nil {
		return nil, errDecorate(err, "Scale")
	}
	return &Species{comp: comp, charge: s.charge * n, phase: s.phase}, nil
}

//AddGroup returns base with the composition of group attached n times as a
//nested, parenthesized group, as in the (NO3)3 of Fe(NO3)3. The charge of
//the result is the charge of base plus n times the charge of group. The
//phase of base is kept.
func AddGroup(base, group *Species, n int) (*Species, error) {
	if base == nil || group == nil {
		return nil, CError{string(ErrNilSpecies), []string{"AddGroup"}}
	}
	rep, err := NewGroup(n, group.comp)
	if err != nil {
		return nil, errDecorate(err, "AddGroup")
	}
	comp, err := NewGroup(1, base.comp, rep)
	if err != nil {
		return nil, errDecorate(err, "AddGroup")
	}
	return &Species{comp: comp, charge: base.charge + n*group.charge, phase: base.phase}, nil
}

//WithPhase returns a copy of the species with the given phase. This is an
//absolute assignment, any previous phase is discarded.
func (S *Species) WithPhase(p Phase) *Species {
	return &Species{comp: S.comp, charge: S.charge, phase: p}
}

//WithCharge returns a copy of the species with the given net charge. This
//is an absolute assignment, not an increment.
func (S *Species) WithCharge(c int) *Species {
	return &Species{comp: S.comp, charge: c, phase: S.phase}
}

//IncCharge returns a copy of the species with the charge increased by one.
//Successive calls model sequential ionization.
func (S *Species) IncCharge() *Species {
	return &Species{comp: S.comp, charge: S.charge + 1, phase: S.phase}
}

//DecCharge returns a copy of the species with the charge decreased by one.
func (S *Species) DecCharge() *Species {
	return &Species{comp: S.comp, charge: S.charge - 1, phase: S.phase}
}

//Composition returns the composition tree of the species. The returned node
//is shared, not copied, which is safe because nodes are immutable.
func (S *Species) Composition() *CompositionNode {
	return S.comp
}

//Charge returns the net charge of the species.
func (S *Species) Charge() int {
	return S.charge
}

//Phase returns the phase tag of the species (NoPhase if unset).
func (S *Species) Phase() Phase {
	return S.phase
}

//Flatten returns the per-element atom counts of the species' composition.
func (S *Species) Flatten() map[string]int64 {
	return S.comp.Flatten()
}

//Elemental returns whether the species consists of a single distinct
//element (like Fe, O2 or S8), regardless of how many atoms of it.
func (S *Species) Elemental() bool {
	return S.comp.Elements() == 1
}

//Mass returns the molar mass of the species in g/mol, adding up the
//standard atomic weights of the flattened composition. It returns an error
//if some element lacks atomic data.
func (S *Species) Mass() (float64, error) {
	var mass float64
	for symbol, n := range S.Flatten() {
		m, err := SymbolMass(symbol)
		if err != nil {
			return 0, errDecorate(err, "Mass")
		}
		mass += m * float64(n)
	}
	return mass, nil
}

//MassPercent returns the mass fraction, in percent, contributed by each
//element of the species. It returns an error if some element lacks atomic
//data.
func (S *Species) MassPercent() (map[string]float64, error) {
	total, err := S.Mass()
	if err != nil {
		return nil, errDecorate(err, "MassPercent")
	}
	percent := make(map[string]float64)
	for symbol, n := range S.Flatten() {
		m := symbolMass[symbol] //Mass already checked that every symbol is present
		percent[symbol] = 100 * m * float64(n) / total
	}
	return percent, nil
}
