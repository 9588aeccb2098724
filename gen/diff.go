package gen

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders the changes regeneration would apply to old, empty
// when old and new are identical. With colorize set, insertions are
// green and deletions red; otherwise diff lines carry +/- prefixes.
func Diff(old, new []byte, colorize bool) string {
	if string(old) == string(new) {
		return ""
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(string(old), string(new), true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	sb := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			if colorize {
				sb.WriteString(color.GreenString("%s", diff.Text))
			} else {
				sb.WriteString(markLines(diff.Text, "+"))
			}
		case diffpatch.DiffDelete:
			if colorize {
				sb.WriteString(color.RedString("%s", diff.Text))
			} else {
				sb.WriteString(markLines(diff.Text, "-"))
			}
		case diffpatch.DiffEqual:
			sb.WriteString(diff.Text)
		}
	}
	return sb.String()
}

func markLines(text, mark string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = mark + line
	}
	return strings.Join(lines, "\n")
}
