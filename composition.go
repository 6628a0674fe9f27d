/*
 * composition.go, part of gostoich.
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

//CompositionNode describes the element makeup of a chemical species as a
//tree: a node is either a leaf (an element symbol with an atom count) or a
//group (a list of sub-compositions, the whole group repeated multiplier
//times, as in the (OH)2 of Ba(OH)2). Nodes are never modified after
//creation, so subtrees can be shared freely between compositions.
type CompositionNode struct {
	symbol     string
	count      int
	children   []*CompositionNode
	multiplier int
}

//NewLeaf returns a leaf composition: count atoms of the element with the
//given symbol. It returns an error if count is not positive or the symbol
//is not in the atomic data of the library.
func NewLeaf(symbol string, count int) (*CompositionNode, error) {
	if count < 1 {
		return nil, CError{fmt.Sprintf("%s: %d", ErrInvalidCount, count), []string{"NewLeaf"}}
	}
	if !KnownElement(symbol) {
		return nil, CError{string(ErrUnknownElement) + ": " + symbol, []string{"NewLeaf"}}
	}
	return &CompositionNode{symbol: symbol, count: count}, nil
}

//NewGroup returns a group composition: the given children, the whole group
//taken multiplier times. It returns an error if multiplier is not positive
//or no children are given.
func NewGroup(multiplier int, children ...*CompositionNode) (*CompositionNode, error) {
	if multiplier < 1 {
		return nil, CError{fmt.Sprintf("%s: %d", ErrInvalidMultiplier, multiplier), []string{"NewGroup"}}
	}
	if len(children) == 0 {
		return nil, CError{"gostoich: a group needs at least one child composition", []string{"NewGroup"}}
	}
	for i, v := range children {
		if v == nil {
			return nil, CError{fmt.Sprintf("gostoich: nil child composition (position %d)", i), []string{"NewGroup"}}
		}
	}
	c := make([]*CompositionNode, len(children))
	copy(c, children)
	return &CompositionNode{children: c, multiplier: multiplier}, nil
}

//IsLeaf returns whether the node is a leaf (a single element symbol with a
//count) as opposed to a group.
func (C *CompositionNode) IsLeaf() bool {
	return C.children == nil
}

//Symbol returns the element symbol of a leaf node, and the empty string for
//a group.
func (C *CompositionNode) Symbol() string {
	return C.symbol
}

//Flatten returns a map from element symbols to the total number of atoms of
//each element in the composition, with every nested multiplier applied. The
//counts are always positive, which is guaranteed at construction.
func (C *CompositionNode) Flatten() map[string]int64 {
	counts := make(map[string]int64)
	C.flattenInto(counts, 1)
	return counts
}

func (C *CompositionNode) flattenInto(counts map[string]int64, factor int64) {
	if C.IsLeaf() {
		counts[C.symbol] += factor * int64(C.count)
		return
	}
	factor *= int64(C.multiplier)
	for _, child := range C.children {
		child.flattenInto(counts, factor)
	}
}

//TotalAtoms returns the total number of atoms in the composition, i.e. the
//sum of all the flattened counts.
func (C *CompositionNode) TotalAtoms() int64 {
	var total int64
	for _, v := range C.Flatten() {
		total += v
	}
	return total
}

//Elements returns the number of distinct elements in the composition.
func (C *CompositionNode) Elements() int {
	return len(C.Flatten())
}
