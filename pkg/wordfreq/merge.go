package wordfreq

// Add folds other into m by summing counts per token.
func (m FrequencyMap) Add(other FrequencyMap) {
	for token, count := range other {
		m[token] += count
	}
}

// Total returns the number of tokens counted in m.
func (m FrequencyMap) Total() int {
	total := 0
	for _, count := range m {
		total += count
	}
	return total
}

// Merge sums maps into a new FrequencyMap. The result does not depend on the
// order of maps.
func Merge(maps ...FrequencyMap) FrequencyMap {
	merged := make(FrequencyMap)
	for _, m := range maps {
		merged.Add(m)
	}
	return merged
}
