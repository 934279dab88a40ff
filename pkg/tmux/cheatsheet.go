package tmux

import (
	"fmt"
	"strings"
)

// Cheatsheet renders bindings as a markdown document with one table per key
// table, in the order the tables first appear
func Cheatsheet(bindings []Binding, v Version) string {
	var order []string
	byTable := map[string][]Binding{}
	for _, b := range bindings {
		if _, seen := byTable[b.Table]; !seen {
			order = append(order, b.Table)
		}
		byTable[b.Table] = append(byTable[b.Table], b)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# nmk key bindings for tmux %s\n", v)
	for _, table := range order {
		fmt.Fprintf(&sb, "\n## %s\n\n", tableTitle(table))
		sb.WriteString("| Key | Repeat | Command |\n")
		sb.WriteString("|-----|--------|---------|\n")
		for _, b := range byTable[table] {
			repeat := ""
			if b.Repeat {
				repeat = "yes"
			}
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", code(b.Key), repeat, code(b.Command))
		}
	}
	return sb.String()
}

func tableTitle(table string) string {
	switch table {
	case "prefix":
		return "prefix (C-b)"
	case "root":
		return "root (no prefix)"
	case keyTable:
		return keyTable + " (after pressing F12)"
	default:
		return table
	}
}

// code wraps s in a markdown code span that survives a table cell
func code(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}
