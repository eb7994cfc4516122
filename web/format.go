package web

import "strconv"

// formatAmount renders v with Indian digit grouping, e.g. 1234567 as
// "12,34,567".
func formatAmount(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatInt(v, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		grouped := ""
		for len(head) > 2 {
			grouped = "," + head[len(head)-2:] + grouped
			head = head[:len(head)-2]
		}
		s = head + grouped + "," + tail
	}

	if neg {
		return "-" + s
	}
	return s
}
