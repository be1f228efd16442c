// Package rules implements the rule-set document and the engine that
// applies it to profile records.
//
// # Key capabilities
//
//   - YAML rule-set schema: json_value_overwrite entries plus optional
//     run-level default_conditions
//   - Closed condition variant (filename/filepath globs, their exclude
//     forms, and json_value equality) with a fail-closed default for
//     unrecognized tags
//   - Per-mode assembly: explicit enabled default, invalid-rule
//     dropping, default-condition prepending
//   - Ordered application where later rules observe earlier rules'
//     effects, reporting both "anything matched" and "content changed"
//
// # Document shape
//
//	default_conditions:
//	  - type: filepath_glob
//	    pattern: "**/filament/**"
//	json_value_overwrite:
//	  - name: filament_max_volumetric_speed
//	    value: "12"
//	    enabled: true
//	    add: false
//	    conditions:
//	      - type: filename_glob
//	        pattern: "*PLA*"
//	      - type: json_value
//	        key: filament_type
//	        value: PLA
//	        negate: false
//
// Rules are evaluated in declaration order; when several rules target
// the same field, the last matching rule wins.
package rules
