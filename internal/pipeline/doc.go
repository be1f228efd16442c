// Package pipeline drives the per-file processing run.
//
// Resolution pipeline, per candidate file:
//  1. Parse the profile document
//  2. Skip machine-model documents (convert/migrate)
//  3. Resolve the inheritance chain (convert/migrate)
//  4. Apply the fixed profile transforms (convert/migrate)
//  5. Apply the rule engine (convert/update)
//  6. Compute the destination path and write atomically
//
// Every per-file failure is isolated: it feeds the run's error counter
// and the loop proceeds to the next candidate unconditionally. The run
// as a whole fails only when discovery or configuration fails.
package pipeline
