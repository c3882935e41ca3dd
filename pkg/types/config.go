package types

// Default font families for the two script classes. SimSun and Times New
// Roman are what Word documents in Chinese academia conventionally use.
const (
	DefaultChineseFont = "SimSun"
	DefaultEnglishFont = "Times New Roman"
)

// FontConfig selects the display fonts for the two script families.
type FontConfig struct {
	// ChineseFont is applied to CJK runs and CJK-resolved punctuation.
	ChineseFont string `json:"chinese_font" yaml:"chinese_font"`

	// EnglishFont is applied to Latin runs and Latin-resolved punctuation.
	EnglishFont string `json:"english_font" yaml:"english_font"`
}

// DefaultFonts returns the conventional SimSun / Times New Roman pairing.
func DefaultFonts() FontConfig {
	return FontConfig{
		ChineseFont: DefaultChineseFont,
		EnglishFont: DefaultEnglishFont,
	}
}

// Font returns the font family for a resolved script class. ScriptOther
// must be resolved to CJK or Latin before font assignment; unresolved
// runs fall back to the English font.
func (c FontConfig) Font(class ScriptClass) string {
	if class == ScriptCJK {
		return c.ChineseFont
	}
	return c.EnglishFont
}

// Normalized fills zero-valued fields with the defaults.
func (c FontConfig) Normalized() FontConfig {
	if c.ChineseFont == "" {
		c.ChineseFont = DefaultChineseFont
	}
	if c.EnglishFont == "" {
		c.EnglishFont = DefaultEnglishFont
	}
	return c
}

// ExportOptions holds the document-level formatting the exporter applies
// around the per-run font tagging. The core passes these through without
// interpreting them beyond template substitution.
type ExportOptions struct {
	FontConfig `yaml:",inline"`

	// ChineseSizePt and EnglishSizePt are font sizes in points
	// (default 10.5pt, the Word 五号 size).
	ChineseSizePt float64 `json:"chinese_size_pt" yaml:"chinese_size_pt"`
	EnglishSizePt float64 `json:"english_size_pt" yaml:"english_size_pt"`

	// LineSpacing is the line-height multiplier (default 1.5).
	LineSpacing float64 `json:"line_spacing" yaml:"line_spacing"`

	// ItemSpacingPt is the vertical gap between entries in points.
	ItemSpacingPt float64 `json:"item_spacing_pt" yaml:"item_spacing_pt"`

	// HangingIndentPt is the hanging indent applied to wrapped entry
	// lines in points.
	HangingIndentPt float64 `json:"hanging_indent_pt" yaml:"hanging_indent_pt"`

	// Title, when non-empty, is rendered as a heading above the list.
	Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
	TitleSizePt float64 `json:"title_size_pt" yaml:"title_size_pt"`

	// TitleAlign is the heading alignment: left, center, or right.
	TitleAlign string `json:"title_align" yaml:"title_align"`
}

// DefaultExportOptions returns the export defaults used when the caller
// supplies no configuration.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		FontConfig:    DefaultFonts(),
		ChineseSizePt: 10.5,
		EnglishSizePt: 10.5,
		LineSpacing:   1.5,
		ItemSpacingPt: 6,
		TitleSizePt:   14,
		TitleAlign:    "center",
	}
}

// HistoryConfig holds settings for the run history store.
type HistoryConfig struct {
	// DBPath is the SQLite database file path (default
	// ~/.local/share/refformat/history.db resolved by the CLI).
	DBPath string `json:"db_path" yaml:"db_path"`
}
