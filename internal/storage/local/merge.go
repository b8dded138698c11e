package local

// mergeByID overlays incoming onto existing, keyed by id. The position of a
// first-seen id is preserved and its value replaced by the newest write;
// unseen ids append in incoming order.
func mergeByID[T any](existing, incoming []T, id func(T) string) []T {
	merged := make([]T, len(existing), len(existing)+len(incoming))
	index := make(map[string]int, len(existing))
	for i, item := range existing {
		merged[i] = item
		index[id(item)] = i
	}
	for _, item := range incoming {
		if i, ok := index[id(item)]; ok {
			merged[i] = item
			continue
		}
		index[id(item)] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
