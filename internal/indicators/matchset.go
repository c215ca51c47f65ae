package indicators

// MatchSet is the full set of indicator matches for a body of text.
type MatchSet []Match

// HasFamily reports whether any match belongs to the given family.
func (m MatchSet) HasFamily(f Family) bool {
	for _, match := range m {
		if match.Family == f {
			return true
		}
	}
	return false
}

// Tags returns the matched tags for the given family, in scan order.
func (m MatchSet) Tags(f Family) []string {
	var tags []string
	for _, match := range m {
		if match.Family == f {
			tags = append(tags, match.Tag)
		}
	}
	return tags
}

// Merge combines two match sets, dropping duplicate tags within a family.
func (m MatchSet) Merge(other MatchSet) MatchSet {
	seen := make(map[Family]map[string]bool, 2)
	for _, match := range m {
		if seen[match.Family] == nil {
			seen[match.Family] = make(map[string]bool)
		}
		seen[match.Family][match.Tag] = true
	}

	merged := append(MatchSet(nil), m...)
	for _, match := range other {
		if seen[match.Family][match.Tag] {
			continue
		}
		if seen[match.Family] == nil {
			seen[match.Family] = make(map[string]bool)
		}
		seen[match.Family][match.Tag] = true
		merged = append(merged, match)
	}
	return merged
}
