package bamini

import (
	"testing"
	"unicode/utf8"
)

func TestConvertWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tamil", "jkpo;", "தமிழ்"},
		{"greeting", "tzf;fk;", "வணக்கம்"},
		{"mother", "mk;kh", "அம்மா"},
		{"computer", "fzpdp", "கணினி"},
		{"literature", ",yf;fpak;", "இலக்கியம்"},
		{"note", "Fwpg;G", "குறிப்பு"},
		{"chennai", "nrd;id", "சென்னை"},
		{"coimbatore", "Nfhit", "கோவை"},
		{"school", "ghlrhiy", "பாடசாலை"},
		{"father", "je;ij", "தந்தை"},
		{"love", "md;G", "அன்பு"},
		{"sentence", "ePq;fs; vg;gb ,Uf;fpwPh;fs;?", "நீங்கள் எப்படி இருக்கிறீர்கள்?"},
		{"page number", "gf;fk; 5", "பக்கம் 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.in); got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// The scanner must prefer the longest pattern at each position: every input
// here has a shorter prefix entry that would produce the wrong cluster.
func TestConvertLongestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"n[s", "ஜௌ"},  // not "n[" + "s"
		{"nfs", "கௌ"},  // not "nf" + "s"
		{"A+", "யூ"},    // not "A" + "+"
		{"xs", "ஔ"},    // not "x" + "s"
		{"Jh", "தூ"},    // not "J" + "h"
		{"வு+", "வூ"},   // not "வ" passed through + "+"
		{"Z}", "ணூ"},    // not "Z" + "}"
		{"¿f", "கை"},    // not "¿" + "f"
		{"=", "ஸ்ரீ"},    // one glyph, three code points
	}
	for _, tt := range tests {
		if got := Convert(tt.in); got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertPassThrough(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"digits", "2024"},
		{"punctuation", "(!?.)"},
		{"newlines", "\n\n"},
		{"unicode tamil", "தமிழ்"},
		{"unicode tamil word", "புத்தகம்"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.in); got != tt.in {
				t.Errorf("Convert(%q) = %q, want input unchanged", tt.in, got)
			}
		})
	}
}

// Latin letters double as Bamini glyph keys, so text that was never typed in
// Bamini still converts. The dictionary has no way to tell "no" the English
// word from "no" the glyph pair for ழெ.
func TestConvertLatinIsNotPreserved(t *testing.T) {
	if got := Convert("no"); got != "ழெ" {
		t.Errorf("Convert(%q) = %q, want %q", "no", got, "ழெ")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		in      string
		wantRep string
		wantN   int
		wantOK  bool
	}{
		{"jkpo;", "த", len("j"), true},
		{"Jhdk;", "தூ", len("Jh"), true},
		{"nfs...", "கௌ", len("nfs"), true},
		{"¿fdp", "கை", len("¿f"), true},
		{"hello", "", 0, false},
		{"", "", 0, false},
		{"9", "", 0, false},
	}
	for _, tt := range tests {
		rep, n, ok := Default.Lookup(tt.in)
		if rep != tt.wantRep || n != tt.wantN || ok != tt.wantOK {
			t.Errorf("Lookup(%q) = (%q, %d, %v), want (%q, %d, %v)",
				tt.in, rep, n, ok, tt.wantRep, tt.wantN, tt.wantOK)
		}
	}
}

func TestNewTableOverrides(t *testing.T) {
	t.Run("replace existing", func(t *testing.T) {
		tbl := NewTable(Entry{Pattern: "+", Replacement: "+"})
		if got := tbl.Convert("5+3"); got != "5+3" {
			t.Errorf("Convert(%q) = %q, want %q", "5+3", got, "5+3")
		}
		// The longer built-in still outranks the override.
		if got := tbl.Convert("A+"); got != "யூ" {
			t.Errorf("Convert(%q) = %q, want %q", "A+", got, "யூ")
		}
		if got := tbl.Len(); got != Default.Len() {
			t.Errorf("Len() = %d, want %d", got, Default.Len())
		}
	})

	t.Run("add new", func(t *testing.T) {
		tbl := NewTable(Entry{Pattern: "~W~", Replacement: "ஃ"})
		if got := tbl.Convert("~W~"); got != "ஃ" {
			t.Errorf("Convert(%q) = %q, want %q", "~W~", got, "ஃ")
		}
		if got := tbl.Convert("jkpo;"); got != "தமிழ்" {
			t.Errorf("Convert(%q) = %q, want %q", "jkpo;", got, "தமிழ்")
		}
		if got := tbl.Len(); got != Default.Len()+1 {
			t.Errorf("Len() = %d, want %d", got, Default.Len()+1)
		}
	})

	t.Run("empty pattern ignored", func(t *testing.T) {
		tbl := NewTable(Entry{Pattern: "", Replacement: "x"})
		if got := tbl.Len(); got != Default.Len() {
			t.Errorf("Len() = %d, want %d", got, Default.Len())
		}
	})
}

func TestDictionaryWellFormed(t *testing.T) {
	seen := make(map[string]int, len(baminiToUnicode))
	for i, e := range baminiToUnicode {
		if e.Pattern == "" {
			t.Errorf("entry %d: empty pattern", i)
		}
		if !utf8.ValidString(e.Pattern) || !utf8.ValidString(e.Replacement) {
			t.Errorf("entry %d (%q): invalid UTF-8", i, e.Pattern)
		}
		if prev, dup := seen[e.Pattern]; dup {
			t.Errorf("entry %d: pattern %q already declared at %d", i, e.Pattern, prev)
		}
		seen[e.Pattern] = i
	}
	if got := Default.Len(); got != len(baminiToUnicode) {
		t.Errorf("Default.Len() = %d, want %d entries", got, len(baminiToUnicode))
	}
}
