// Package color converts between the color representations used by chat
// platform APIs: packed 24-bit integers (role and embed colors), hex strings
// and RGB triples.
//
// A packed color stores red in bits 16-23, green in bits 8-15 and blue in
// bits 0-7. Only the low 24 bits are meaningful; every extraction masks each
// channel to 8 bits, and packing truncates out-of-range channel values
// instead of rejecting them.
//
// # Parsing policy
//
// [HexToInt] is deliberately permissive: it parses the longest hex prefix of
// its input and reports input without any hex digits with the [NaN]
// sentinel rather than an error. Callers that need strict validation use
// [ParseHex], which returns a *chaterrors.ColorError. [Parse] additionally
// accepts decimal integers and "r,g,b" triples.
//
//	n := color.HexToInt("#5865f2")   // 5793266
//	color.IntToHex(n, true)          // "#5865f2"
//	color.IntToRGB(n)                // {88 101 242}
//	color.RGBToInt(300, 0, 0)        // 0x2c0000 (300&0xff = 44)
package color
