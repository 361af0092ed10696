package lineedit

// Vi text-object recognizers, rewritten from
// kungfusheep-browse/lineedit/vim.go's byte/string-scanning
// findWordObject/findQuoteObject onto Buffer's rune-indexed API so
// multi-byte characters are never split.

func findWordObject(b *Buffer, cfg Config, cursor int, inner bool) (start, end int, found bool) {
	n := b.Len()
	if n == 0 {
		return 0, 0, false
	}
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}

	onSpace := b.AtChar(cursor) == ' '
	start, end = cursor, cursor

	if onSpace {
		for start > 0 && b.AtChar(start-1) == ' ' {
			start--
		}
		for end < n && b.AtChar(end) == ' ' {
			end++
		}
		if !inner {
			if end < n {
				for end < n && b.AtChar(end) != ' ' {
					end++
				}
			} else if start > 0 {
				for start > 0 && b.AtChar(start-1) != ' ' {
					start--
				}
			}
		}
		return start, end, true
	}

	for start > 0 && b.AtChar(start-1) != ' ' {
		start--
	}
	for end < n && b.AtChar(end) != ' ' {
		end++
	}
	if !inner {
		if end < n && b.AtChar(end) == ' ' {
			for end < n && b.AtChar(end) == ' ' {
				end++
			}
		} else if start > 0 && b.AtChar(start-1) == ' ' {
			for start > 0 && b.AtChar(start-1) == ' ' {
				start--
			}
		}
	}
	return start, end, true
}

func findQuoteObject(b *Buffer, cursor int, quote rune, inner bool) (start, end int, found bool) {
	n := b.Len()
	if n == 0 {
		return 0, 0, false
	}
	var quotes []int
	for i := 0; i < n; i++ {
		if b.AtChar(i) == quote {
			quotes = append(quotes, i)
		}
	}
	if len(quotes) < 2 {
		return 0, 0, false
	}
	for i := 0; i+1 < len(quotes); i += 2 {
		qStart, qEnd := quotes[i], quotes[i+1]
		if cursor >= qStart && cursor <= qEnd {
			if inner {
				return qStart + 1, qEnd, true
			}
			return qStart, qEnd + 1, true
		}
	}
	for i := 0; i+1 < len(quotes); i += 2 {
		if quotes[i] > cursor {
			if inner {
				return quotes[i] + 1, quotes[i+1], true
			}
			return quotes[i], quotes[i+1] + 1, true
		}
	}
	return 0, 0, false
}
