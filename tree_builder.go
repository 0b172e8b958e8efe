package reflow

import "strings"

// BuildDocument groups classified lines into a Document: an optional
// headline, an ordered body of Chunks, and an optional trailing
// footer, per §4.3.
func BuildDocument(lines []CatLine) Document {
	var doc Document

	headlineIdx := -1
	for i, l := range lines {
		if l.FinalCat == Headline {
			headlineIdx = i
			break
		}
	}
	if headlineIdx >= 0 {
		doc.Headline = &Chunk{Kind: ChunkHeadline, Line: lines[headlineIdx]}
	}

	idx := 0
	n := len(lines)
	var pendingIntro *CatLine

	for idx < n {
		if idx == headlineIdx {
			idx++
			continue
		}
		l := lines[idx]
		if l.FinalCat == Empty {
			// A blank line between a colon-ended introduction and its
			// list does not cancel the pending absorption; only a
			// non-list chunk following the introduction does.
			idx++
			continue
		}

		switch l.FinalCat {
		case Code:
			chunk, next := buildCodeChunk(lines, idx)
			doc.Body = append(doc.Body, chunk)
			idx = next
			pendingIntro = nil

		case Table:
			end := idx
			for end < n && lines[end].FinalCat == Table {
				end++
			}
			doc.Body = append(doc.Body, Chunk{Kind: ChunkTable, Lines: lines[idx:end]})
			idx = end
			pendingIntro = nil

		case Comment:
			end := idx
			for end < n && lines[end].FinalCat == Comment {
				end++
			}
			doc.Body = append(doc.Body, Chunk{Kind: ChunkComment, Lines: lines[idx:end]})
			idx = end
			pendingIntro = nil

		case BlockQuote:
			end := idx
			for end < n && lines[end].FinalCat == BlockQuote {
				end++
			}
			doc.Body = append(doc.Body, Chunk{Kind: ChunkBlockQuote, Lines: lines[idx:end]})
			idx = end
			pendingIntro = nil

		case URL:
			doc.Body = append(doc.Body, Chunk{Kind: ChunkURL, Line: l})
			idx++
			pendingIntro = nil

		case Footer:
			end := idx
			for end < n && lines[end].FinalCat == Footer {
				end++
			}
			doc.Footer = &Chunk{Kind: ChunkFooter, Lines: lines[idx:end]}
			idx = end
			pendingIntro = nil

		case ListItem, ListContinuation:
			items, next := buildList(lines, idx, -1)
			if pendingIntro != nil && len(items) > 0 {
				items[0].Intro = pendingIntro
			}
			doc.Body = append(doc.Body, Chunk{Kind: ChunkList, Items: items})
			idx = next
			pendingIntro = nil

		default: // ProseGeneral, ProseIntroduction
			end := idx
			for end < n && (lines[end].FinalCat == ProseGeneral || lines[end].FinalCat == ProseIntroduction) {
				end++
			}
			para := lines[idx:end]
			next := peekNextNonEmpty(lines, end-1)
			if len(para) == 1 && para[0].FinalCat == ProseIntroduction && next >= 0 && lines[next].FinalCat == ListItem {
				intro := para[0]
				pendingIntro = &intro
			} else {
				doc.Body = append(doc.Body, Chunk{Kind: ChunkParagraph, Lines: para})
				pendingIntro = nil
			}
			idx = end
		}
	}

	return doc
}

// buildCodeChunk consumes a code block starting at idx: a fenced block
// runs to its matching closing delimiter (including any blank lines
// between, preserved verbatim); an indented block runs while lines
// stay Code-classified, trimming a trailing blank run.
func buildCodeChunk(lines []CatLine, idx int) (Chunk, int) {
	n := len(lines)
	if strings.HasPrefix(strings.TrimSpace(lines[idx].Text), fenceDelimiter) {
		end := idx + 1
		for end < n && !strings.HasPrefix(strings.TrimSpace(lines[end].Text), fenceDelimiter) {
			end++
		}
		if end < n {
			end++ // include closing delimiter
		}
		return Chunk{Kind: ChunkCode, Fenced: true, Lines: lines[idx:end]}, end
	}

	end := idx
	for end < n && (lines[end].FinalCat == Code || lines[end].FinalCat == Empty) {
		end++
	}
	for end > idx && lines[end-1].FinalCat == Empty {
		end--
	}
	return Chunk{Kind: ChunkCode, Lines: lines[idx:end]}, end
}

// buildList consumes a (possibly nested) run of list items starting at
// idx. parentIndent is the marker indent of the enclosing item, or -1
// at the top level; the run ends when a line's indent falls at or
// below parentIndent, or the run runs out of plausible continuation
// material.
func buildList(lines []CatLine, idx int, parentIndent int) ([]ListItemNode, int) {
	n := len(lines)
	var items []ListItemNode

	for idx < n {
		l := lines[idx]
		if l.FinalCat == Empty {
			next := peekNextNonEmpty(lines, idx)
			if next < 0 || next >= n {
				idx = n
				break
			}
			if lines[next].FinalCat == ListItem && lines[next].Indent > parentIndent {
				idx = next
				continue
			}
			if len(items) > 0 && lines[next].Indent >= itemTextColumn(items[len(items)-1].Marker) {
				idx = next
				continue
			}
			break
		}

		if l.FinalCat != ListItem && l.FinalCat != ListContinuation {
			if len(items) == 0 || l.Indent < itemTextColumn(items[len(items)-1].Marker) {
				break
			}
			items[len(items)-1].Continuation = append(items[len(items)-1].Continuation, l)
			idx++
			continue
		}

		if l.FinalCat == ListItem {
			if l.Indent <= parentIndent {
				break
			}
			if len(items) > 0 && l.Indent > items[len(items)-1].Marker.Indent {
				nested, next := buildList(lines, idx, items[len(items)-1].Marker.Indent)
				items[len(items)-1].Nested = append(items[len(items)-1].Nested, nested...)
				idx = next
				continue
			}
			items = append(items, ListItemNode{Marker: l})
			idx++
			continue
		}

		// ListContinuation
		if len(items) == 0 {
			break
		}
		items[len(items)-1].Continuation = append(items[len(items)-1].Continuation, l)
		idx++
	}

	return items, idx
}

// itemTextColumn returns the column at which a list item's wrapped
// text begins, derived from its marker line's verbatim bullet prefix.
func itemTextColumn(marker CatLine) int {
	return DisplayWidth(ExtractBulletPrefix(marker.Text), false)
}

func peekNextNonEmpty(lines []CatLine, from int) int {
	for i := from + 1; i < len(lines); i++ {
		if lines[i].FinalCat != Empty {
			return i
		}
	}
	return -1
}
