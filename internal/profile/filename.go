package profile

import (
	"regexp"
	"strings"
)

var (
	// "0.4 nozzle" anywhere in the filename, case-insensitive.
	nozzlePattern = regexp.MustCompile(`(?i)(\d+\.\d+) nozzle`)

	// The printer name preceding the nozzle-diameter phrase. An "@"
	// separates a printer name from surrounding profile text, in either
	// position ("Vyper@0.4 nozzle", "PLA Basic @Vyper 0.4 nozzle").
	printerNamePattern = regexp.MustCompile(`(?i)([^@]*?)\s*@?\s*\d+\.\d+\s*nozzle`)
)

// NozzleDiameter extracts the nozzle diameter embedded in a profile
// filename, e.g. "0.4" from "Vyper@0.4 nozzle.json".
func NozzleDiameter(filename string) (string, bool) {
	m := nozzlePattern.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// PrinterName extracts the printer name preceding the nozzle-diameter
// phrase, e.g. "Vyper" from "Vyper@0.4 nozzle.json".
func PrinterName(filename string) (string, bool) {
	m := printerNamePattern.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}

	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}

	return name, true
}

// CompatiblePrintersCondition builds the condition expression stored in
// compatible_printers_condition. The backslash-escaped quotes are part
// of the field's value format and must survive verbatim.
func CompatiblePrintersCondition(printerName, nozzleDiameter string) string {
	return `printer_model==\"` + printerName + `\" and nozzle_diameter[0]==` + nozzleDiameter
}
