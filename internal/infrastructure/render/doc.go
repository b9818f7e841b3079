// Package render draws FGN Savings Bond documents onto PDF pages.
//
// The package has three layers. Primitive elements (checkboxes, input
// boxes, signature lines) and composite blocks (paragraphs, tables,
// spacers) all implement the Block interface and draw through the
// Canvas abstraction. FormTemplate assembles a subscription record
// into an ordered block list matching the official DMO form layout.
// Generator lays the blocks onto A4 pages and serializes the result.
//
// All geometry is in PDF points with a top-left origin.
package render
