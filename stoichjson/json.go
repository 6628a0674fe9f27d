/*
 * json.go, part of gostoich.
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

//Package stoichjson provides JSON-serializable shapes for goStoich species
//and reactions, meant for persistence layers and other external programs. A
//species is exchanged in its flattened form (per-element counts plus charge
//and phase), so nothing here depends on how the composition tree was built.
package stoichjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	stoich "github.com/rmera/gostoich"
)

//A ready-to-serialize container for a species: its canonical formula, its
//flattened per-element counts, the net charge and the phase ("", "s", "l",
//"g" or "aq").
type Species struct {
	Formula string
	Counts  map[string]int64
	Charge  int
	Phase   string
}

//A ready-to-serialize container for one term of an equation.
type Term struct {
	Formula     string
	Coefficient int
	Charge      int
	Phase       string
	Catalyst    bool `json:",omitempty"`
}

//A ready-to-serialize container for a balanced (or not) reaction.
type Reaction struct {
	Reactants []*Term
	Products  []*Term
	Type      string
}

//An easily JSON-serializable error type.
type Error struct {
	deco       []string
	IsError    bool //If this is false (no error) all the other fields will be at their zero-values.
	InSpecies  bool //If error, was it while converting a species?
	InReaction bool //Was it while converting or rebuilding a reaction?
	InProcess  bool
	Function   string //which go function gave the error
	Message    string //the error itself
}

//Error implements the error interface.
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors, so I got an error while serializing your error so you can... you know the drill.
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "species":
		jerr.InSpecies = true
	case "reaction":
		jerr.InReaction = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//phaseName and phaseFromName translate between stoich.Phase and the short
//names used on the wire.
func phaseName(p stoich.Phase) string {
	switch p {
	case stoich.Solid:
		return "s"
	case stoich.Liquid:
		return "l"
	case stoich.Gas:
		return "g"
	case stoich.Aqueous:
		return "aq"
	}
	return ""
}

func phaseFromName(name string) (stoich.Phase, error) {
	switch name {
	case "":
		return stoich.NoPhase, nil
	case "s":
		return stoich.Solid, nil
	case "l":
		return stoich.Liquid, nil
	case "g":
		return stoich.Gas, nil
	case "aq":
		return stoich.Aqueous, nil
	}
	return stoich.NoPhase, fmt.Errorf("unknown phase name: %q", name)
}

//NewSpecies returns the serializable shape of a species.
func NewSpecies(s *stoich.Species) *Species {
	return &Species{
		Formula: s.Formula(),
		Counts:  s.Flatten(),
		Charge:  s.Charge(),
		Phase:   phaseName(s.Phase()),
	}
}

//Rebuild returns a stoich.Species equivalent to the container: a flat group
//of one leaf per element, in alphabetical order, with the charge and phase
//of the container. The nesting of the original composition is not
//recovered; the flattened counts, charge and phase are.
func (S *Species) Rebuild() (*stoich.Species, *Error) {
	const funcname = "Rebuild"
	if len(S.Counts) == 0 {
		return nil, NewError("species", funcname, fmt.Errorf("species %q has no element counts", S.Formula))
	}
	symbols := make([]string, 0, len(S.Counts))
	for s := range S.Counts {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	leaves := make([]*stoich.CompositionNode, 0, len(symbols))
	for _, symbol := range symbols {
		leaf, err := stoich.NewLeaf(symbol, int(S.Counts[symbol]))
		if err != nil {
			return nil, NewError("species", funcname, err)
		}
		leaves = append(leaves, leaf)
	}
	comp, err := stoich.NewGroup(1, leaves...)
	if err != nil {
		return nil, NewError("species", funcname, err)
	}
	phase, err := phaseFromName(S.Phase)
	if err != nil {
		return nil, NewError("species", funcname, err)
	}
	ret, err := stoich.NewSpecies(comp, S.Charge, phase)
	if err != nil {
		return nil, NewError("species", funcname, err)
	}
	return ret, nil
}

func newTerm(t *stoich.ReactionTerm) *Term {
	s := t.Species()
	return &Term{
		Formula:     s.Formula(),
		Coefficient: t.Coefficient(),
		Charge:      s.Charge(),
		Phase:       phaseName(s.Phase()),
		Catalyst:    t.IsCatalyst(),
	}
}

//NewReaction returns the serializable shape of a reaction: one term per
//species with its current coefficient, and the classification label if the
//classifier has run ("" otherwise).
func NewReaction(r *stoich.Reaction) *Reaction {
	ret := new(Reaction)
	for _, t := range r.Reactants() {
		ret.Reactants = append(ret.Reactants, newTerm(t))
	}
	for _, t := range r.Products() {
		ret.Products = append(ret.Products, newTerm(t))
	}
	if rtype, ok := r.Type(); ok {
		ret.Type = rtype.String()
	}
	return ret
}

//EncodeReaction Marshals the reaction and writes it, followed by a newline,
//to out.
func EncodeReaction(r *stoich.Reaction, out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(NewReaction(r)); err != nil {
		return NewError("reaction", "EncodeReaction", err)
	}
	return nil
}

//EncodeSpecies Marshals the species and writes it, followed by a newline,
//to out.
func EncodeSpecies(s *stoich.Species, out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(NewSpecies(s)); err != nil {
		return NewError("species", "EncodeSpecies", err)
	}
	return nil
}

//DecodeSpecies reads one newline-terminated JSON species from stdin and
//returns its container.
func DecodeSpecies(stdin *bufio.Reader) (*Species, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil {
		return nil, NewError("species", "DecodeSpecies", err)
	}
	ret := new(Species)
	err = json.Unmarshal(line, ret)
	if err != nil {
		return nil, NewError("species", "DecodeSpecies", err)
	}
	return ret, nil
}

//DecodeReaction reads one newline-terminated JSON reaction from stdin and
//returns its container.
func DecodeReaction(stdin *bufio.Reader) (*Reaction, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil {
		return nil, NewError("reaction", "DecodeReaction", err)
	}
	ret := new(Reaction)
	err = json.Unmarshal(line, ret)
	if err != nil {
		return nil, NewError("reaction", "DecodeReaction", err)
	}
	return ret, nil
}
