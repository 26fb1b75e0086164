package layout

import "strings"

// Dividers lists the characters an over-long word may be broken after.
const Dividers = "-.,;^*=+"

// Wrap reflows text into lines of exactly width runes.
//
// Whitespace runs (including newlines) separate words. Words longer than
// width are first split after each interior divider; any piece still longer
// than width is cut into width-sized chunks. Lines are filled greedily and
// right-padded with spaces. Empty input or a non-positive width yields nil.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var result []string
	cur := make([]rune, 0, width+1)

	emit := func() {
		result = append(result, fit(cur, width))
		cur = cur[:0]
	}

	for _, word := range strings.Fields(text) {
		for _, sub := range splitWord([]rune(word), width) {
			if len(cur)+len(sub) <= width {
				cur = append(cur, sub...)
				cur = append(cur, ' ')
			} else {
				// An empty line-in-progress is never flushed, so an
				// unbreakable word at the start of a line emits no blank line.
				if len(cur) > 0 {
					emit()
				}
				for len(sub) > width {
					result = append(result, string(sub[:width]))
					sub = sub[width:]
				}
				cur = append(cur, sub...)
				cur = append(cur, ' ')
			}
			if len(cur) >= width {
				emit()
			}
		}
	}
	if len(cur) > 0 {
		emit()
	}
	return result
}

// splitWord breaks word after every interior divider when it does not fit
// in width. The first and last runes never split.
func splitWord(word []rune, width int) [][]rune {
	if len(word) <= width {
		return [][]rune{word}
	}
	var parts [][]rune
	last := 0
	for i := 1; i < len(word)-1; i++ {
		if strings.ContainsRune(Dividers, word[i]) {
			parts = append(parts, word[last:i+1])
			last = i + 1
		}
	}
	return append(parts, word[last:])
}

// fit pads line with spaces and truncates it to exactly width runes.
func fit(line []rune, width int) string {
	if len(line) >= width {
		return string(line[:width])
	}
	return string(line) + strings.Repeat(" ", width-len(line))
}
