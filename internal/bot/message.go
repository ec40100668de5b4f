package bot

import "unicode/utf8"

const maxMessageLen = 4096 // Telegram text message limit

// splitText cuts s into consecutive pieces of at most n runes.
func splitText(s string, n int) []string {
	if utf8.RuneCountInString(s) <= n {
		return []string{s}
	}
	r := []rune(s)
	parts := make([]string, 0, len(r)/n+1)
	for len(r) > n {
		parts = append(parts, string(r[:n]))
		r = r[n:]
	}
	if len(r) > 0 {
		parts = append(parts, string(r))
	}
	return parts
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
