// Package io reads chart data files and writes computed layouts.
//
// # Data Formats
//
// Chart data is a list of values with a display name and an optional color.
// The same data can be written as JSON, TOML or YAML:
//
//	[
//	  {"name": "Rent", "value": 30, "color": "#4e79a7"},
//	  {"name": "Food", "value": 10}
//	]
//
//	[[data]]
//	name = "Rent"
//	value = 30
//	color = "#4e79a7"
//
//	data:
//	  - name: Rent
//	    value: 30
//	    color: "#4e79a7"
//
// JSON and YAML also accept the list directly without the "data" key.
// [ImportData] infers the format from the file extension; [ReadData] takes it
// explicitly, which suits stdin and HTTP bodies.
//
// # Layout Export
//
// [WriteLayout] and [ExportLayout] write the JSON sink output for a computed
// chart, including the seed for seeded layouts.
package io
