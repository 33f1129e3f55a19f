package translit

// latinTable folds accented and ligature Latin capitals to their ICAO Doc 9303
// ASCII equivalents. The apostrophe is dropped.
var latinTable = map[rune]string{
	0x0027: "",   // ' (apostrophe)
	0x00C0: "A",  // À
	0x00C1: "A",  // Á
	0x00C2: "A",  // Â
	0x00C3: "A",  // Ã
	0x00C4: "AE", // Ä (or A)
	0x00C5: "AA", // Å (or A)
	0x00C6: "AE", // Æ
	0x00C7: "C",  // Ç
	0x00C8: "E",  // È
	0x00C9: "E",  // É
	0x00CA: "E",  // Ê
	0x00CB: "E",  // Ë
	0x00CC: "I",  // Ì
	0x00CD: "I",  // Í
	0x00CE: "I",  // Î
	0x00CF: "I",  // Ï
	0x00D0: "D",  // Ð
	0x00D1: "N",  // Ñ (or NXX)
	0x00D2: "O",  // Ò
	0x00D3: "O",  // Ó
	0x00D4: "O",  // Ô
	0x00D5: "O",  // Õ
	0x00D6: "OE", // Ö (or O)
	0x00D8: "OE", // Ø
	0x00D9: "U",  // Ù
	0x00DA: "U",  // Ú
	0x00DB: "U",  // Û
	0x00DC: "UE", // Ü (or UXX or U)
	0x00DD: "Y",  // Ý
	0x00DE: "TH", // Þ
	0x00DF: "SS", // ß (eszett)
	0x0100: "A",  // Ā
	0x0102: "A",  // Ă
	0x0104: "A",  // Ą
	0x0106: "C",  // Ć
	0x0108: "C",  // Ĉ
	0x010A: "C",  // Ċ
	0x010C: "C",  // Č
	0x010E: "D",  // Ď
	0x0110: "D",  // Đ
	0x0112: "E",  // Ē
	0x0114: "E",  // Ĕ
	0x0116: "E",  // Ė
	0x0118: "E",  // Ę
	0x011A: "E",  // Ě
	0x011C: "G",  // Ĝ
	0x011E: "G",  // Ğ
	0x0120: "G",  // Ġ
	0x0122: "G",  // Ģ
	0x0124: "H",  // Ĥ
	0x0126: "H",  // Ħ
	0x0128: "I",  // Ĩ
	0x012A: "I",  // Ī
	0x012C: "I",  // Ĭ
	0x012E: "I",  // Į
	0x0130: "I",  // İ
	0x0131: "I",  // ı
	0x0132: "IJ", // Ĳ
	0x0134: "J",  // Ĵ
	0x0136: "K",  // Ķ
	0x0139: "L",  // Ĺ
	0x013B: "L",  // Ļ
	0x013D: "L",  // Ľ
	0x013F: "L",  // Ŀ
	0x0141: "L",  // Ł
	0x0143: "N",  // Ń
	0x0145: "N",  // Ņ
	0x0147: "N",  // Ň
	0x014A: "N",  // Ŋ
	0x014C: "O",  // Ō
	0x014E: "O",  // Ŏ
	0x0150: "O",  // Ő
	0x0152: "OE", // Œ
	0x0154: "R",  // Ŕ
	0x0156: "R",  // Ŗ
	0x0158: "R",  // Ř
	0x015A: "S",  // Ś
	0x015C: "S",  // Ŝ
	0x015E: "S",  // Ş
	0x0160: "S",  // Š
	0x0162: "T",  // Ţ
	0x0164: "T",  // Ť
	0x0166: "T",  // Ŧ
	0x0168: "U",  // Ũ
	0x016A: "U",  // Ū
	0x016C: "U",  // Ŭ
	0x016E: "U",  // Ů
	0x0170: "U",  // Ű
	0x0172: "U",  // Ų
	0x0174: "W",  // Ŵ
	0x0176: "Y",  // Ŷ
	0x0178: "Y",  // Ÿ
	0x0179: "Z",  // Ź
	0x017B: "Z",  // Ż
	0x017D: "Z",  // Ž
	0x1E9E: "SS", // ẞ
}
