package reflow

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// footerTagPattern matches a Git trailer tag at column 0, e.g.
// "Signed-off-by: " or "Co-authored-by: ".
var footerTagPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*:[ \t]`)

// urlSchemes are the recognized URL prefixes for §4.1's URL pattern.
var urlSchemes = []string{"http://", "https://", "ftp://", "mailto:"}

const fenceDelimiter = "```"

// Lex converts raw input lines into CatLines carrying initial,
// per-line probability distributions over Category, per spec §4.1.
func Lex(lines []string, opts Options) []CatLine {
	result := make([]CatLine, 0, len(lines))
	headlineAssigned := false
	inFence := false

	for i, raw := range lines {
		text, hadCR := stripCR(raw)
		lineNumber := i + 1
		trimmed := strings.TrimSpace(text)

		if trimmed == "" {
			result = append(result, CatLine{
				Text:       text,
				LineNumber: lineNumber,
				Indent:     0,
				HadCR:      hadCR,
				Probs:      map[Category]float64{Empty: 1.0},
				FinalCat:   Empty,
			})
			continue
		}

		indent := CountIndent(text)
		probs := make(map[Category]float64)
		matchedAny := false

		firstNonWS := leadingNonWS(trimmed)
		isFenceLine := strings.HasPrefix(trimmed, fenceDelimiter)

		if firstNonWS == '#' {
			probs[Comment] += 1.0
			matchedAny = true
		}
		if firstNonWS == '>' {
			probs[BlockQuote] += 1.0
			matchedAny = true
		}
		if isFenceLine {
			probs[Code] += 1.0
			matchedAny = true
			inFence = !inFence
		} else if indent >= 4 {
			probs[Code] += 0.7
			matchedAny = true
		}
		if marker, ok := listMarkerKind(trimmed); ok {
			switch marker {
			case listMarkerEmoji:
				probs[ListItem] += 0.8
			default:
				probs[ListItem] += 0.9
			}
			matchedAny = true
		}
		if isTableRow(trimmed) {
			probs[Table] += 0.7
			matchedAny = true
		}
		if isSoleURL(trimmed) {
			matchedAny = true
			if DisplayWidth(trimmed, opts.StripANSI) > opts.Width {
				probs[URL] += 0.9
			} else {
				probs[ProseGeneral] += 0.9
			}
		}
		if footerTagPattern.MatchString(text) {
			probs[Footer] += 0.8
			matchedAny = true
		}
		if !matchedAny {
			probs[ProseGeneral] += 0.5
		}
		if strings.HasSuffix(trimmed, ":") && !strings.Contains(trimmed, "://") {
			// Outweighs the 0.5 ProseGeneral fallback so a genuine
			// wrap-candidate line ending in ':' becomes the argmax,
			// while still leaving ProseGeneral mass in the map for
			// the classifier's neighbor window to draw on.
			probs[ProseIntroduction] += 0.6
		}

		if !headlineAssigned && firstNonWS != '#' {
			probs[Headline] += 1.0
			headlineAssigned = true
		}

		result = append(result, CatLine{
			Text:       text,
			LineNumber: lineNumber,
			Indent:     indent,
			HadCR:      hadCR,
			Probs:      probs,
			FinalCat:   argmaxCategory(probs),
		})
		_ = inFence // fence-run enforcement happens in the classifier's post-pass
	}

	return result
}

// stripCR removes a single trailing \r and reports whether one was
// present.
func stripCR(line string) (string, bool) {
	if strings.HasSuffix(line, "\r") {
		return line[:len(line)-1], true
	}
	return line, false
}

// leadingNonWS returns the first non-whitespace rune of an
// already-trimmed string, or 0 if empty.
func leadingNonWS(trimmed string) rune {
	for _, r := range trimmed {
		return r
	}
	return 0
}

type listMarkerFlavor int

const (
	listMarkerBullet listMarkerFlavor = iota
	listMarkerNumbered
	listMarkerEmoji
)

// listMarkerKind reports whether trimmed begins with a recognized list
// marker (bullet, numbered, or emoji) followed by a separating space.
// The emoji case accepts any single non-ASCII grapheme cluster; it does
// not check that the cluster is an emoji.
func listMarkerKind(trimmed string) (listMarkerFlavor, bool) {
	if len(trimmed) >= 2 && (trimmed[0] == '*' || trimmed[0] == '-' || trimmed[0] == '+') && trimmed[1] == ' ' {
		return listMarkerBullet, true
	}

	digitCount := 0
	for digitCount < len(trimmed) && trimmed[digitCount] >= '0' && trimmed[digitCount] <= '9' {
		digitCount++
	}
	if digitCount > 0 && digitCount+1 < len(trimmed) {
		rest := trimmed[digitCount:]
		if (rest[0] == '.' || rest[0] == ')') && rest[1] == ' ' {
			return listMarkerNumbered, true
		}
	}

	graphemes := uniseg.NewGraphemes(trimmed)
	if graphemes.Next() {
		cluster := graphemes.Str()
		if !isASCII(cluster) {
			rest := trimmed[len(cluster):]
			if strings.HasPrefix(rest, " ") {
				return listMarkerEmoji, true
			}
		}
	}
	return 0, false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

// isTableRow reports whether trimmed contains at least two unescaped
// pipe characters, matching Markdown pipe-table conventions.
func isTableRow(trimmed string) bool {
	count := 0
	runes := []rune(trimmed)
	for i, r := range runes {
		if r != '|' {
			continue
		}
		if i > 0 && runes[i-1] == '\\' {
			continue
		}
		count++
	}
	return count >= 2
}

// isSoleURL reports whether trimmed's entire content is a single URL
// token with a recognized scheme.
func isSoleURL(trimmed string) bool {
	if strings.ContainsAny(trimmed, " \t") {
		return false
	}
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(trimmed, scheme) {
			return true
		}
	}
	return false
}

// ExtractBulletPrefix returns the verbatim marker-plus-separator prefix
// of a list item line: everything up to and including the first run of
// spaces following the marker token. The caller passes the full line
// (with leading indentation intact).
func ExtractBulletPrefix(line string) string {
	trimmedStart := strings.TrimLeft(line, " ")
	offset := len(line) - len(trimmedStart)

	idx := offset
	for byteIdx, ch := range trimmedStart {
		idx = offset + byteIdx
		if ch == ' ' {
			idx++
			break
		}
	}
	for idx < len(line) && line[idx] == ' ' {
		idx++
	}
	return line[:idx]
}
