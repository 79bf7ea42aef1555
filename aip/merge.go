package aip

// Pair is a labelled sidecar value. Multiselect fields and tag/value lists
// are ordered lists of Pairs.
type Pair struct {
	Label string
	Value string
}

// Mapping is a sidecar mapping fragment: nested string-keyed maps whose
// leaves are scalars, nil, or []Pair.
type Mapping map[string]interface{}

// DeepMerge merges overlay into base recursively and returns the result
// without modifying either input. When both sides hold a Mapping under the
// same key, the values are merged; any other collision is a
// MergeConflictError.
func DeepMerge(base, overlay Mapping) (Mapping, error) {
	result := make(Mapping, len(base))
	for key, value := range base {
		result[key] = value
	}
	for key, value := range overlay {
		existing, present := result[key]
		if !present {
			result[key] = value
			continue
		}
		existingMap, existingIsMap := existing.(Mapping)
		valueMap, valueIsMap := value.(Mapping)
		if existingIsMap && valueIsMap {
			merged, err := DeepMerge(existingMap, valueMap)
			if err != nil {
				return nil, err
			}
			result[key] = merged
			continue
		}
		return nil, &MergeConflictError{Key: key}
	}
	return result, nil
}
