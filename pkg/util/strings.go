package util

func RemoveDuplicateStrings(strings []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, item := range strings {
		if !presentStrings[item] && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}

	return list
}

func ContainsString(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}

	return false
}
