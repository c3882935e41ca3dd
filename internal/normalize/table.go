// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

// foldTable maps full-width punctuation and digits to half-width
// equivalents. Applied anywhere in a line, independent of script
// context. Immutable after init; tests enumerate it exhaustively.
var foldTable = map[rune]rune{
	// Digits.
	'０': '0', '１': '1', '２': '2', '３': '3', '４': '4',
	'５': '5', '６': '6', '７': '7', '８': '8', '９': '9',

	// Parentheses and brackets.
	'（': '(', '）': ')', '【': '[', '】': ']',

	// Separators.
	'—': '-', '–': '-', '―': '-', '．': '.', '：': ':', '；': ';',

	// Other common full-width symbols.
	'，': ',', '。': '.', '？': '?', '！': '!', '＠': '@', '＃': '#',
	'＄': '$', '％': '%', '＾': '^', '＆': '&', '＊': '*', '＋': '+',
	'＝': '=', '～': '~', '　': ' ',
}

// latinExtra maps characters that only fold to half-width inside
// Latin-affiliated segments. The interpunct stays untouched in Chinese
// context, where it separates transliterated name parts.
var latinExtra = map[rune]rune{
	'·': '.',
	'∶': ':',
}

// halfToFull maps half-width punctuation to full-width equivalents
// inside CJK-affiliated segments.
var halfToFull = map[rune]rune{
	',': '，', '.': '。', ':': '：', ';': '；',
	'?': '？', '!': '！', '(': '（', ')': '）',
	'[': '【', ']': '】',
}
