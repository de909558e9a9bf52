package dump

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff from a to b, with "-" and "+" prefixes on
// removed and added lines and two lines of context around changes.  It is
// empty when a and b are equal.
func Diff(a, b []byte) string {
	if string(a) == string(b) {
		return ""
	}
	m := map[string]rune{}
	aLines, bLines := splitLines(string(a)), splitLines(string(b))
	aRunes, bRunes := lineRunes(m, aLines), lineRunes(m, bLines)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(aRunes, bRunes, false)

	var (
		out    []diffLine
		ai, bi int
	)
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, ln := range aLines[ai : ai+n] {
				out = append(out, diffLine{prefix: "-", text: ln})
			}
			ai += n
		case diffpatch.DiffInsert:
			for _, ln := range bLines[bi : bi+n] {
				out = append(out, diffLine{prefix: "+", text: ln})
			}
			bi += n
		case diffpatch.DiffEqual:
			for _, ln := range aLines[ai : ai+n] {
				out = append(out, diffLine{prefix: " ", text: ln})
			}
			ai += n
			bi += n
		}
	}
	return render(out, 2)
}

// lineRunes gives every distinct line its own rune, shared through m.
func lineRunes(m map[string]rune, lines []string) []rune {
	res := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			// stay clear of the surrogate range
			r = rune(len(m)) + 0xE000
			m[ln] = r
		}
		res[i] = r
	}
	return res
}

type diffLine struct {
	prefix, text string
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

func render(lines []diffLine, context int) string {
	keep := make([]bool, len(lines))
	for i, ln := range lines {
		if ln.prefix == " " {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}
	var b strings.Builder
	skipped := false
	for i, ln := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped && b.Len() > 0 {
			b.WriteString("...\n")
		}
		skipped = false
		b.WriteString(ln.prefix + ln.text + "\n")
	}
	return b.String()
}
