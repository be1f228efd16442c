// Package record implements the ordered JSON document type that slicer
// profiles are made of, together with inheritance resolution.
//
// # Key capabilities
//
//   - Order-preserving parse and serialization of flat profile documents
//     (4-space indent, non-ASCII kept verbatim, optional key sorting)
//   - Deep clone and order-insensitive equality for change detection
//   - Shallow merge of an override record onto a base record
//   - Recursive resolution of `inherits` chains with a fixed depth cap
//
// # Value space
//
// Parsed values are one of: string, bool, json.Number, nil, []any, or
// *Record for nested objects. Normalize converts arbitrary Go values
// (for example rule values decoded from YAML) into the same space so
// that comparisons between parsed and injected values are meaningful.
package record
