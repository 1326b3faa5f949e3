package notation

import "strings"

// Sentence is a question template. Placeholders are written {name}, and
// {l} always stands for the math delimiter of the notation.
type Sentence string

// Fill substitutes {l} and the given name/value pairs.
func (s Sentence) Fill(n Notation, pairs ...string) string {
	args := make([]string, 0, len(pairs)+2)
	args = append(args, "{l}", n.Delim())
	for i := 0; i+1 < len(pairs); i += 2 {
		args = append(args, "{"+pairs[i]+"}", pairs[i+1])
	}
	return strings.NewReplacer(args...).Replace(string(s))
}
