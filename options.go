package baminiconv

import "github.com/Anto-Nobel/ConvertBaminiToUnicodePPTX/bamini"

// Option configures a Converter instance.
type Option func(*Converter)

// WithMappings merges extra substitution entries over the built-in Bamini
// dictionary. An entry whose pattern matches a built-in one replaces its
// replacement text; new patterns are added.
func WithMappings(entries ...bamini.Entry) Option {
	return func(c *Converter) {
		c.extraMappings = append(c.extraMappings, entries...)
	}
}

// WithNotes controls whether presentation notes slides are converted
// (default: true).
func WithNotes(convert bool) Option {
	return func(c *Converter) {
		c.convertNotes = convert
	}
}

// WithNormalization controls whether converted text is composed to Unicode
// NFC (default: true).
func WithNormalization(normalize bool) Option {
	return func(c *Converter) {
		c.normalize = normalize
	}
}
