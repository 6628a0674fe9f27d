/*
 * atomicdata.go, part of gostoich.
 *
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
 *
 * goStoich is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package stoich

//A map for assigning mass to elements.
//Values from the IUPAC 2021 standard atomic weights, abridged to 4
//significant figures. Note that just reasonably common elements are present.
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.003,
	"Li": 6.94,
	"Be": 9.012,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Ne": 20.18,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.95,
	"K":  39.1,
	"Ca": 40.08,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Se": 78.96,
	"Br": 79.904,
	"Sr": 87.62,
	"Ag": 107.87,
	"Sn": 118.71,
	"I":  126.90,
	"Ba": 137.33,
	"Ce": 140.12,
	"Pt": 195.08,
	"Au": 196.97,
	"Hg": 200.59,
	"Pb": 207.2,
}

//A map for assigning atomic numbers to elements.
//The same elements as in symbolMass are present.
var symbolNumber = map[string]int{
	"H":  1,
	"He": 2,
	"Li": 3,
	"Be": 4,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
	"K":  19,
	"Ca": 20,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Se": 34,
	"Br": 35,
	"Sr": 38,
	"Ag": 47,
	"Sn": 50,
	"I":  53,
	"Ba": 56,
	"Ce": 58,
	"Pt": 78,
	"Au": 79,
	"Hg": 80,
	"Pb": 82,
}

//KnownElement returns whether the symbol is present in the periodic-table
//data of this library. Symbols are case sensitive ("co" is not cobalt).
func KnownElement(symbol string) bool {
	_, ok := symbolMass[symbol]
	return ok
}

//SymbolMass returns the standard atomic weight for the element with the
//given symbol. It returns an error if the symbol is not in the atomic data.
func SymbolMass(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, CError{string(ErrUnknownElement) + ": " + symbol, []string{"SymbolMass"}}
	}
	return m, nil
}

//AtomicNumber returns the atomic number for the element with the given
//symbol. It returns an error if the symbol is not in the atomic data.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbolNumber[symbol]
	if !ok {
		return 0, CError{string(ErrUnknownElement) + ": " + symbol, []string{"AtomicNumber"}}
	}
	return z, nil
}
