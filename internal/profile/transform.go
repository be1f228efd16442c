package profile

import (
	"profile-forge/internal/record"
	"profile-forge/internal/report"
)

// Recognized keys with special handling during conversion.
const (
	// TypeKey marks the document kind; machine-model documents are
	// skipped before resolution even starts.
	TypeKey          = "type"
	MachineModelType = "machine_model"

	keyIsCustomDefined             = "is_custom_defined"
	keyInstantiation               = "instantiation"
	keyCompatiblePrinters          = "compatible_printers"
	keyCompatiblePrintersCondition = "compatible_printers_condition"
	keySupportMultiBedTypes        = "support_multi_bed_types"
)

// IsMachineModel reports whether the record is a machine-model document.
func IsMachineModel(rec *record.Record) bool {
	return rec.GetString(TypeKey) == MachineModelType
}

// Transformer applies the fixed conversion transforms to resolved
// profiles.
type Transformer struct {
	rep *report.Reporter
}

// NewTransformer returns a Transformer reporting through rep.
func NewTransformer(rep *report.Reporter) *Transformer {
	return &Transformer{rep: rep}
}

// Apply mutates rec in place:
//
//   - is_custom_defined is forced to "0", instantiation to "true"
//   - compatible_printers is removed unconditionally
//   - compatible_printers_condition is populated from filename metadata,
//     but only when the key is present and currently empty
//   - support_multi_bed_types is forced to "1" when present
func (t *Transformer) Apply(rec *record.Record, filename string) {
	rec.Set(keyIsCustomDefined, "0")
	rec.Set(keyInstantiation, "true")

	rec.Delete(keyCompatiblePrinters)

	t.setCompatiblePrintersCondition(rec, filename)

	if rec.Has(keySupportMultiBedTypes) {
		rec.Set(keySupportMultiBedTypes, "1")
	}
}

func (t *Transformer) setCompatiblePrintersCondition(rec *record.Record, filename string) {
	if !rec.Has(keyCompatiblePrintersCondition) {
		t.rep.Debugf("%s not present in %s, skipping", keyCompatiblePrintersCondition, filename)
		return
	}

	if existing := rec.GetString(keyCompatiblePrintersCondition); existing != "" {
		t.rep.Warnf("%s already set in %s: %q", keyCompatiblePrintersCondition, filename, existing)
		return
	}

	diameter, ok := NozzleDiameter(filename)
	if !ok {
		t.rep.Warnf("no nozzle diameter found in filename %s, skipping %s", filename, keyCompatiblePrintersCondition)
		return
	}

	name, ok := PrinterName(filename)
	if !ok {
		t.rep.Warnf("could not extract printer name from filename %s", filename)
		return
	}

	rec.Set(keyCompatiblePrintersCondition, CompatiblePrintersCondition(name, diameter))
}
