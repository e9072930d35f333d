package config

// Merge folds every key of source into target in place. Keys are visited
// in sorted order so the first conflict reported is deterministic.
//
// Mappings merge recursively, sequences are extended with the source
// elements in order, and scalars are replaced. A mapping or sequence may only
// be merged with a value of the same shape, and a scalar may not be replaced
// by a mapping or sequence; either case fails with a *TypeConflictError.
func Merge(target, source Mapping) error {
	return merge(target, source, nil)
}

func merge(target, source Mapping, path []string) error {
	for _, key := range source.Keys() {
		value := source[key]
		existing, ok := target[key]
		if !ok {
			target[key] = clone(value)
			continue
		}

		keyPath := append(path[:len(path):len(path)], key)
		switch branch := existing.(type) {
		case Mapping:
			sub, ok := value.(Mapping)
			if !ok {
				return &TypeConflictError{Path: keyPath, Target: KindMapping, Source: value.Kind()}
			}
			if err := merge(branch, sub, keyPath); err != nil {
				return err
			}
		case Sequence:
			items, ok := value.(Sequence)
			if !ok {
				return &TypeConflictError{Path: keyPath, Target: KindSequence, Source: value.Kind()}
			}
			target[key] = append(branch, clone(items).(Sequence)...)
		default:
			if value.Kind() != KindScalar {
				return &TypeConflictError{Path: keyPath, Target: KindScalar, Source: value.Kind()}
			}
			target[key] = value
		}
	}
	return nil
}

// MergeAll merges sources, in order, into a new mapping.
func MergeAll(sources ...Mapping) (Mapping, error) {
	out := Mapping{}
	for _, src := range sources {
		if err := Merge(out, src); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// clone copies mappings and sequences so that merged trees never share
// storage with their sources.
func clone(v Value) Value {
	switch t := v.(type) {
	case Mapping:
		out := make(Mapping, len(t))
		for k, item := range t {
			out[k] = clone(item)
		}
		return out
	case Sequence:
		out := make(Sequence, len(t))
		for i, item := range t {
			out[i] = clone(item)
		}
		return out
	default:
		return v
	}
}
