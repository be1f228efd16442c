// Package profile implements the fixed transformation set applied to
// resolved slicer profiles during conversion, plus the filename
// metadata extraction that feeds compatible_printers_condition.
package profile
