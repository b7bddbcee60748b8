package utils

// AppendUnique appends only values not already present, keeping first-seen
// order stable.
func AppendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if len(v) == 0 {
			continue
		}
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
