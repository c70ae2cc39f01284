package latex

import "strings"

// BeginSongs returns the opening wrapper for one book section. The section
// name doubles as the title index identifier, with spaces mapped to
// underscores; every section also feeds the shared author index.
func BeginSongs(section string) string {
	var b strings.Builder
	b.WriteString("\\begin{songs}{")
	b.WriteString(strings.ReplaceAll(section, " ", "_"))
	b.WriteString("_idx,authoridx}\n")
	b.WriteString("\\songchapter{")
	b.WriteString(section)
	b.WriteString("}\n")
	return b.String()
}

// EndSongs returns the closing wrapper for a book section.
func EndSongs() string {
	return "\\end{songs}"
}
