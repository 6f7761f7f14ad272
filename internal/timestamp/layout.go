package timestamp

import (
	"fmt"
	"strings"
)

var strftimeDirectives = map[byte]string{
	'Y': "2006",
	'm': "01",
	'd': "02",
	'H': "15",
	'M': "04",
	'S': "05",
	'z': "-0700",
	'Z': "MST",
	'%': "%",
}

// ParseLayout converts a strftime pattern into a Go layout.
// Strings without a '%' are returned unchanged and treated as Go layouts.
func ParseLayout(s string) (string, error) {
	if s == "" {
		return DefaultLayout, nil
	}
	if !strings.Contains(s, "%") {
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("layout %q ends with a bare %%", s)
		}
		i++
		repl, ok := strftimeDirectives[s[i]]
		if !ok {
			return "", fmt.Errorf("layout %q: unsupported directive %%%c", s, s[i])
		}
		b.WriteString(repl)
	}
	return b.String(), nil
}
