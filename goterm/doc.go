// Package goterm collects the GO terms carried by interval records and loads
// the table that maps each term to an English description.
package goterm
