package comparison

// StringSlicesEqual determines whether or not two string slices have equal
// contents. It does not consider nilness when comparing zero-length slices.
func StringSlicesEqual(first, second []string) bool {
	// Slices of different lengths can't be equal.
	if len(first) != len(second) {
		return false
	}

	// Compare element-wise.
	for f, value := range first {
		if second[f] != value {
			return false
		}
	}

	// The slices are equal.
	return true
}

// StringMapsEqual determines whether or not two string maps have equal
// contents, i.e. the same keys mapping to the same values. It does not
// consider nilness when comparing zero-length maps.
func StringMapsEqual(first, second map[string]string) bool {
	// Maps of different lengths can't be equal.
	if len(first) != len(second) {
		return false
	}

	// Since the lengths match, it suffices to verify that every entry of the
	// first map is mirrored in the second.
	for key, value := range first {
		if other, ok := second[key]; !ok || other != value {
			return false
		}
	}

	// The maps are equal.
	return true
}
