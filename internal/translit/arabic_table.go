package translit

// arabicTable maps Arabic letters to ICAO Doc 9303 Latin sequences. Teh
// marbuta maps to the XTA placeholder rewritten by tehMarbuta.
var arabicTable = map[rune]string{
	0x0621: "XE",  // ء hamza
	0x0622: "XAA", // آ alef with madda above
	0x0623: "XAE", // أ alef with hamza above
	0x0624: "U",   // ؤ waw with hamza above
	0x0625: "I",   // إ alef with hamza below
	0x0626: "XI",  // ئ yeh with hamza above
	0x0627: "A",   // ا alef
	0x0628: "B",   // ب beh
	0x0629: "XTA", // ة teh marbuta (XAH at end of name)
	0x062A: "T",   // ت teh
	0x062B: "XTH", // ث theh
	0x062C: "J",   // ج jeem
	0x062D: "XH",  // ح hah
	0x062E: "XKH", // خ khah
	0x062F: "D",   // د dal
	0x0630: "XDH", // ذ thal
	0x0631: "R",   // ر reh
	0x0632: "Z",   // ز zain
	0x0633: "S",   // س seen
	0x0634: "XSH", // ش sheen
	0x0635: "XSS", // ص sad
	0x0636: "XDZ", // ض dad
	0x0637: "XTT", // ط tah
	0x0638: "XZZ", // ظ zah
	0x0639: "E",   // ع ain
	0x063A: "G",   // غ ghain
	0x0641: "F",   // ف feh
	0x0642: "Q",   // ق qaf
	0x0643: "K",   // ك kaf
	0x0644: "L",   // ل lam
	0x0645: "M",   // م meem
	0x0646: "N",   // ن noon
	0x0647: "H",   // ه heh
	0x0648: "W",   // و waw
	0x0649: "XAY", // ى alef maksura
	0x064A: "Y",   // ي yeh
	0x0671: "XXA", // ٱ alef wasla
	0x0679: "XXT", // ٹ tteh
	0x067C: "XRT", // ټ teh with ring
	0x067E: "P",   // پ peh
	0x0681: "XKE", // ځ hah with hamza above
	0x0685: "XXH", // څ hah with 3 dots above
	0x0686: "XC",  // چ tcheh
	0x0688: "XXD", // ڈ ddal
	0x0689: "XDR", // ډ dal with ring
	0x0691: "XXR", // ڑ rreh
	0x0693: "XRR", // ړ reh with ring
	0x0696: "XRX", // ږ reh with dot below and dot above
	0x0698: "XJ",  // ژ jeh
	0x069A: "XXS", // ښ seen with dot below and dot above
	0x06A9: "XKK", // ک keheh
	0x06AB: "XXK", // ګ kaf with ring
	0x06AD: "XNG", // ڭ ng
	0x06AF: "XGG", // گ gaf
	0x06BA: "XNN", // ں noon ghunna
	0x06BC: "XXN", // ڼ noon with ring
	0x06BE: "XDO", // ھ heh doachashmee
	0x06C0: "XYH", // ۀ heh with yeh above
	0x06C1: "XXG", // ہ heh goal
	0x06C2: "XGE", // ۂ heh goal with hamza above
	0x06C3: "XTG", // ۃ teh marbuta goal
	0x06CC: "XYA", // ى farsi yeh
	0x06CD: "XXY", // ۍ yeh with tail
	0x06D0: "Y",   // ې yeh
	0x06D2: "XYB", // ے yeh barree
	0x06D3: "XBE", // ۓ yeh barree with hamza above
}
