package classify

import "unicode"

// isCJK reports whether r falls in one of the five reserved blocks:
// Han ideographs, Han extension A, Hangul syllables, Hiragana, Katakana.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0xAC00 && r <= 0xD7AF) ||
		(r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF)
}

// CJKRatio returns the share of CJK characters among the non-whitespace
// characters of text. Whitespace-only or empty input yields 0.
func CJKRatio(text string) float64 {
	var cjk, total int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if isCJK(r) {
			cjk++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(cjk) / float64(total)
}
