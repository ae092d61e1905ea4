package feed

// inherit resolves a value through an ordered fallback chain: the first
// non-empty candidate wins, otherwise empty. Variant fields inheriting from
// their parent (description, image, brand) all go through this one policy.
func inherit(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
