package tmux

import (
	"bufio"
	"strings"
)

// Binding is a single bind-key line of a rendered configuration
type Binding struct {
	Table   string
	Key     string
	Repeat  bool
	Command string
}

// ParseBindings extracts the key bindings from rendered configuration text.
// Bindings without -n or -T belong to the "prefix" table.
func ParseBindings(conf string) []Binding {
	var bindings []Binding
	scanner := bufio.NewScanner(strings.NewReader(conf))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 || fields[0] != "bind-key" {
			continue
		}
		b := Binding{Table: "prefix"}
		i := 1
	flags:
		for ; i < len(fields); i++ {
			switch fields[i] {
			case "-n":
				b.Table = "root"
			case "-r":
				b.Repeat = true
			case "-T":
				if i+1 < len(fields) {
					i++
					b.Table = fields[i]
				}
			default:
				break flags
			}
		}
		if i >= len(fields)-1 {
			continue
		}
		b.Key = unquoteKey(fields[i])
		b.Command = strings.Join(fields[i+1:], " ")
		bindings = append(bindings, b)
	}
	return bindings
}

func unquoteKey(k string) string {
	if len(k) >= 3 && k[0] == '\'' && k[len(k)-1] == '\'' {
		return k[1 : len(k)-1]
	}
	return k
}
