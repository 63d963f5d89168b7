package baminiconv

import "golang.org/x/text/unicode/norm"

// transformText is the per-element text pipeline: Bamini substitution, then
// NFC composition of whatever the substitution produced. Text the dictionary
// leaves alone comes back untouched, so elements without Bamini glyphs stay
// byte-identical in the output document even when they hold decomposed
// Unicode.
func (c *Converter) transformText(s string) string {
	out := c.table.Convert(s)
	if out == s {
		return s
	}
	if c.normalize {
		out = norm.NFC.String(out)
	}
	return out
}
