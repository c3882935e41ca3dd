package numbering

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantCleaned  string
		wantStripped bool
		wantN        int
	}{
		{"bracket", "[1] Smith J. Title", "Smith J. Title", true, 1},
		{"paren", "(12) Doe J. Title", "Doe J. Title", true, 12},
		{"dot", "3. Zhang S. Title", "Zhang S. Title", true, 3},
		{"leading whitespace", "   [7]  entry text", "entry text", true, 7},
		{"no marker", "Smith J. Title", "Smith J. Title", false, 0},
		{"marker not at start", "see [1] for details", "see [1] for details", false, 0},
		{"bare digits no dot", "2020 was a year", "2020 was a year", false, 0},
		{"digits mid-line dot", "1.5 ratio", "5 ratio", true, 1},
		{"empty", "", "", false, 0},
		{"whitespace only", "   ", "", false, 0},
		{"marker only", "[4]", "", true, 4},
		{"overflowing digits recover zero", "[99999999999999999999] entry", "entry", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, stripped, n := Strip(tt.line)
			if cleaned != tt.wantCleaned || stripped != tt.wantStripped || n != tt.wantN {
				t.Errorf("Strip(%q) = (%q, %v, %d), want (%q, %v, %d)",
					tt.line, cleaned, stripped, n, tt.wantCleaned, tt.wantStripped, tt.wantN)
			}
		})
	}
}

// Stripping already-stripped text must not match again.
func TestStripIdempotent(t *testing.T) {
	lines := []string{
		"[1] Smith J. Title",
		"(2) Doe J. Title",
		"3. Zhang S. Title",
	}

	for _, line := range lines {
		cleaned, stripped, _ := Strip(line)
		if !stripped {
			t.Fatalf("Strip(%q) did not strip", line)
		}
		again, strippedAgain, n := Strip(cleaned)
		if strippedAgain {
			t.Errorf("Strip(%q) stripped a second time to %q (n=%d)", cleaned, again, n)
		}
		if again != cleaned {
			t.Errorf("second Strip changed text: %q -> %q", cleaned, again)
		}
	}
}

func TestFormatPrefix(t *testing.T) {
	tests := []struct {
		f    Format
		i    int
		want string
	}{
		{FormatBracket, 1, "[1] "},
		{FormatPlain, 2, "2. "},
		{FormatParen, 10, "(10) "},
	}

	for _, tt := range tests {
		if got := tt.f.Prefix(tt.i); got != tt.want {
			t.Errorf("%s.Prefix(%d) = %q, want %q", tt.f.Name, tt.i, got, tt.want)
		}
	}
}

func TestByName(t *testing.T) {
	if got := ByName("paren"); got.Name != "paren" {
		t.Errorf("ByName(paren) = %v", got)
	}
	if got := ByName("plain"); got.CounterStyle != "decimal" {
		t.Errorf("ByName(plain).CounterStyle = %q", got.CounterStyle)
	}
	// Unknown names fall back to the first registered format.
	if got := ByName("roman-numerals"); got.Name != Formats[0].Name {
		t.Errorf("ByName(unknown) = %v, want %v", got, Formats[0])
	}
}

// Prefixes produced by any format must strip back to the bare entry.
func TestPrefixRoundTrip(t *testing.T) {
	entry := "Smith J. A study of things. Journal, 2020."
	for _, f := range Formats {
		for _, i := range []int{1, 9, 42} {
			line := f.Prefix(i) + entry
			cleaned, stripped, n := Strip(line)
			if !stripped {
				t.Errorf("%s: Strip(%q) did not strip", f.Name, line)
			}
			if cleaned != entry {
				t.Errorf("%s: Strip(%q) = %q, want %q", f.Name, line, cleaned, entry)
			}
			if n != i {
				t.Errorf("%s: recovered %d, want %d", f.Name, n, i)
			}
		}
	}
}
