package translit

// cyrillicTable holds the ICAO Doc 9303 Cyrillic capitals. Lower-case letters
// are resolved through their capital form, see Table.lookup.
var cyrillicTable = map[rune]string{
	0x0401: "E",    // Ё (except Belorussian = IO)
	0x0402: "D",    // Ђ
	0x0404: "IE",   // Є (except if Ukrainian first character, then = YE)
	0x0405: "DZ",   // Ѕ
	0x0406: "I",    // І
	0x0407: "I",    // Ї (except if Ukrainian first character, then = YI)
	0x0408: "J",    // Ј
	0x0409: "LJ",   // Љ
	0x040A: "NJ",   // Њ
	0x040C: "K",    // Ќ (except Macedonian = KJ)
	0x040E: "U",    // Ў
	0x040F: "DZ",   // Џ (except Macedonian = DJ)
	0x0410: "A",    // А
	0x0411: "B",    // Б
	0x0412: "V",    // В
	0x0413: "G",    // Г (except Belorussian, Serbian, Ukrainian = H)
	0x0414: "D",    // Д
	0x0415: "E",    // Е
	0x0416: "ZH",   // Ж (except Serbian = Z)
	0x0417: "Z",    // З
	0x0418: "I",    // И (except Ukrainian = Y)
	0x0419: "I",    // Й (except if Ukrainian first character, then = Y)
	0x041A: "K",    // К
	0x041B: "L",    // Л
	0x041C: "M",    // М
	0x041D: "N",    // Н
	0x041E: "O",    // О
	0x041F: "P",    // П
	0x0420: "R",    // Р
	0x0421: "S",    // С
	0x0422: "T",    // Т
	0x0423: "U",    // У
	0x0424: "F",    // Ф
	0x0425: "KH",   // Х (except Serbian, Macedonian = H)
	0x0426: "TS",   // Ц (except Serbian, Macedonian = C)
	0x0427: "CH",   // Ч (except Serbian = C)
	0x0428: "SH",   // Ш (except Serbian = S)
	0x0429: "SHCH", // Щ (except Bulgarian = SHT)
	0x042A: "IE",   // Ъ
	0x042B: "Y",    // Ы
	0x042D: "E",    // Э
	0x042E: "IU",   // Ю (except if Ukrainian first character, then = YU)
	0x042F: "IA",   // Я (except if Ukrainian first character, then = YA)
	0x046A: "U",    // Ѫ
	0x0474: "Y",    // Ѵ
	0x0490: "G",    // Ґ
	0x0492: "G",    // Ғ (except Macedonian = GJ)
	0x04BA: "C",    // Һ
}
