/*
 * plot.go, part of gostoich.
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

//Package stoichplot draws simple plots from goStoich species and reactions:
//the mass-percent composition of a species and the balanced coefficients of
//an equation. Output goes to PNG files.
package stoichplot

import (
	"fmt"
	"image/color"
	"sort"

	stoich "github.com/rmera/gostoich"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//MassPercent plots the mass fraction, in percent, contributed by each
//element of the species, as a bar chart, and saves it as a PNG to filename.
//Bars appear in alphabetical element order.
func MassPercent(s *stoich.Species, title, filename string) error {
	if s == nil {
		return fmt.Errorf("stoichplot: nil species given")
	}
	percent, err := s.MassPercent()
	if err != nil {
		return err
	}
	symbols := make([]string, 0, len(percent))
	for symbol := range percent {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	values := make(plotter.Values, len(symbols))
	for i, symbol := range symbols {
		values[i] = percent[symbol]
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "% of mass"
	p.Y.Min = 0
	p.Y.Max = 100
	bars, err := plotter.NewBarChart(values, vg.Points(25))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 255, A: 255}
	p.Add(bars)
	p.NominalX(symbols...)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}

//Coefficients plots the stoichiometric coefficients of the reaction as a
//bar chart, reactants first, and saves it as a PNG to filename. The
//reaction is normally balanced before plotting, but any coefficients are
//plotted as they are.
func Coefficients(r *stoich.Reaction, title, filename string) error {
	if r == nil {
		return fmt.Errorf("stoichplot: nil reaction given")
	}
	terms := append(r.Reactants(), r.Products()...)
	names := make([]string, len(terms))
	values := make(plotter.Values, len(terms))
	for i, t := range terms {
		names[i] = t.Species().Formula()
		values[i] = float64(t.Coefficient())
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "coefficient"
	p.Y.Min = 0
	bars, err := plotter.NewBarChart(values, vg.Points(25))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{B: 255, A: 255}
	p.Add(bars)
	p.NominalX(names...)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}
