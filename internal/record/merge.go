package record

// Merge combines a base (ancestor) record with an override (descendant)
// record. Every override key is written into a copy of base; existing
// keys keep their position, new keys are appended.
//
// The merge is shallow: when both sides hold a nested object under the
// same key, the override object replaces the base object wholesale.
// Such keys are returned so the caller can surface a warning.
func Merge(base, override *Record) (*Record, []string) {
	merged := base.Clone()

	var shallow []string

	for _, key := range override.keys {
		value := override.values[key]

		if existing, ok := merged.Get(key); ok {
			_, baseIsObject := existing.(*Record)
			_, overrideIsObject := value.(*Record)

			if baseIsObject && overrideIsObject {
				shallow = append(shallow, key)
			}
		}

		merged.Set(key, cloneValue(value))
	}

	return merged, shallow
}
