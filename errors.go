/*
 * errors.go, part of gostoich.
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

import "strings"

//PanicMsg is a message for the different error kinds of the library. Even
//though it does satisfy the error interface, it is mostly used as the first
//part of the message of a CError, so the kind of a returned error can be
//recovered with errors.Is.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//Errors of the library. Every error returned by goStoich wraps one of these.
const (
	ErrInvalidCount        = PanicMsg("gostoich: element count must be a positive integer")
	ErrInvalidMultiplier   = PanicMsg("gostoich: group multiplier must be a positive integer")
	ErrUnknownElement      = PanicMsg("gostoich: element symbol not in the atomic data")
	ErrNilSpecies          = PanicMsg("gostoich: nil species given")
	ErrPhaseConflict       = PanicMsg("gostoich: can't combine species with different explicit phases")
	ErrEmptyReaction       = PanicMsg("gostoich: a reaction needs at least one non-catalyst term on each side")
	ErrUnbalanceable       = PanicMsg("gostoich: the equation admits no balancing coefficients")
	ErrNoPositiveSolution  = PanicMsg("gostoich: the equation admits no all-positive coefficients")
	ErrAmbiguousBalance    = PanicMsg("gostoich: the equation is degenerate, more than one independent balance exists")
	ErrBalanceVerification = PanicMsg("gostoich: internal error, the computed coefficients failed verification")
)

//CError is the concrete error type of the library. It implements the
//stoich.Error interface, so information can be added to it as it is passed
//up the calling stack, without wrapping it into anything else.
type CError struct {
	msg  string
	deco []string
}

//Error implements the error interface.
func (err CError) Error() string { return err.msg }

//Decorate will add the dec string to the decoration slice of strings of the
//error and return the resulting slice. If dec is empty, the current slice is
//returned without adding anything.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Is reports whether the error was built from the given PanicMsg, so the
//errors.Is machinery works on errors returned by this library.
func (err CError) Is(target error) bool {
	t, ok := target.(PanicMsg)
	if !ok {
		return false
	}
	return strings.HasPrefix(err.msg, string(t))
}

//errDecorate adds the name of the caller to err if err is a stoich.Error,
//and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
