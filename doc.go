/*
 * doc.go, part of gostoich.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package stoich provides structures to describe chemical species as compositions
of elements (including ions, nested groups, phases and charges), to assemble those
species into chemical equations, and to balance the equations, producing the
minimal positive integer stoichiometric coefficients that conserve every element
and the net charge.


	**goStoich Capabilities**

    Builds species from elements, nested groups, charges and phase tags,
	with pure, value-semantics operations (nothing shared is ever mutated).

    Flattens any composition, no matter how deeply nested, into a per-element
	atom count.

    Balances chemical equations with exact rational arithmetic (no floating
	point in the solver, so no rounding mishaps on large coefficients),
	including ionic equations where the net charge must be conserved too.

    Classifies balanced reactions (synthesis, decomposition, single and double
	displacement, combustion, acid-base, redox) with a fixed-precedence
	rule table.

    Computes molar masses and mass-percent compositions from the included
	atomic data.

    Renders canonical Hill-order formulas, suitable as storage keys for
	external persistence layers.

The stoichjson subpackage provides JSON-serializable shapes for species and
balanced reactions, and the stoichplot subpackage draws simple composition and
coefficient plots.

All operations in this library are synchronous. Species, compositions and
reactions can be shared freely between goroutines for reading; only
Reaction.Balance writes (once) to the reaction it is given, so a given
Reaction must not be balanced from two goroutines at the same time.
Different Reactions are fully independent.
*/
package stoich
