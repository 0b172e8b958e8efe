package reflow

import "strings"

// Neighbor window weights for the classifier's FIR-style smoothing
// kernel, per §4.2.
const (
	neighborWeight1 = 0.25
	neighborWeight2 = 0.125
)

// Trace, when non-nil, receives one call per line classified, logging
// its pre- and post-refinement distributions and winning category.
// The CLI wires this to internal/trace under --debug-trace; it is nil
// (and so a no-op) otherwise.
var Trace func(format string, args ...any)

// argmaxCategory returns the category with the highest probability in
// probs, breaking ties using categoryPrecedence (earlier entries win).
func argmaxCategory(probs map[Category]float64) Category {
	best := ProseGeneral
	bestScore := -1.0
	bestRank := len(categoryPrecedence)

	rank := make(map[Category]int, len(categoryPrecedence))
	for i, c := range categoryPrecedence {
		rank[c] = i
	}

	for cat, score := range probs {
		r := rank[cat]
		if score > bestScore || (score == bestScore && r < bestRank) {
			best = cat
			bestScore = score
			bestRank = r
		}
	}
	return best
}

// Classify refines each line's probability distribution using a
// symmetric ±2 neighbor window, then fixes the final category with two
// post-passes: footer-run detection and fenced-code enforcement.
func Classify(lines []CatLine) []CatLine {
	out := make([]CatLine, len(lines))
	copy(out, lines)

	// snapshot holds the pre-refinement distributions so that each
	// line's neighbor contributions come from the lexer's original
	// scores, not from neighbors already overwritten earlier in this
	// same pass.
	snapshot := make([]map[Category]float64, len(lines))
	for i, l := range lines {
		snapshot[i] = l.Probs
	}

	for i := range out {
		if out[i].FinalCat == Empty {
			continue
		}

		refined := make(map[Category]float64, len(snapshot[i]))
		for cat, p := range snapshot[i] {
			refined[cat] = p
		}

		for _, offset := range []int{-2, -1, 1, 2} {
			j := i + offset
			if j < 0 || j >= len(out) || out[j].FinalCat == Empty {
				continue
			}
			weight := neighborWeight1
			if offset == -2 || offset == 2 {
				weight = neighborWeight2
			}
			for cat, p := range snapshot[j] {
				refined[cat] += p * weight
			}
		}

		out[i].Probs = refined
		out[i].FinalCat = argmaxCategory(refined)

		if Trace != nil {
			Trace("line %d: initial=%v refined=%v final=%s", out[i].LineNumber, snapshot[i], refined, out[i].FinalCat)
		}
	}

	applyFooterRun(out)
	applyCodeFences(out)

	return out
}

// applyFooterRun extends Footer classification over the trailing block
// of trailer lines and their indented continuations, provided at least
// one line of that block matches the trailer-tag pattern, and demotes
// every Footer-classified line above that block to ProseGeneral.
func applyFooterRun(lines []CatLine) {
	end := len(lines)
	for end > 0 && lines[end-1].FinalCat == Empty {
		end--
	}
	if end == 0 {
		return
	}

	start := end
	for start > 0 {
		prev := lines[start-1]
		if prev.FinalCat == Empty {
			break
		}
		trimmed := strings.TrimSpace(prev.Text)
		isTag := footerTagPattern.MatchString(prev.Text)
		isContinuation := prev.Indent > 0 && trimmed != ""
		if !isTag && !isContinuation {
			break
		}
		start--
	}

	hasTag := false
	for i := start; i < end; i++ {
		if footerTagPattern.MatchString(lines[i].Text) {
			hasTag = true
			break
		}
	}
	if hasTag {
		for i := start; i < end; i++ {
			lines[i].FinalCat = Footer
		}
	} else {
		// No trailing trailer block: every Footer line is a stray.
		start = end
	}

	// Any line before this trailing suffix that the neighbor-window
	// refinement nonetheless tagged Footer is a false positive: demote
	// it back to ProseGeneral so a stray "Tag: ..."-shaped line in the
	// body doesn't get pinned to the end of the message.
	for i := 0; i < start; i++ {
		if lines[i].FinalCat == Footer {
			lines[i].FinalCat = ProseGeneral
		}
	}
}

// applyCodeFences forces every line within a fenced code block,
// including its delimiters, to FinalCat Code. An unclosed fence runs to
// the end of input.
func applyCodeFences(lines []CatLine) {
	inFence := false
	fenceStart := -1

	for i, l := range lines {
		if l.FinalCat == Empty {
			continue
		}
		trimmed := strings.TrimSpace(l.Text)
		if strings.HasPrefix(trimmed, fenceDelimiter) {
			if !inFence {
				inFence = true
				fenceStart = i
			} else {
				inFence = false
				for j := fenceStart; j <= i; j++ {
					lines[j].FinalCat = Code
				}
				fenceStart = -1
			}
		}
	}
	if inFence {
		for j := fenceStart; j < len(lines); j++ {
			lines[j].FinalCat = Code
		}
	}
}
