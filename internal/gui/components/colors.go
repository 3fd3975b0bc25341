package components

import (
	"image/color"
)

// Cell backgrounds, roughly by chemical family.
var (
	rose = color.NRGBA{R: 0xFF, G: 0x99, B: 0x99, A: 0xFF}
	pale = color.NRGBA{R: 0xFF, G: 0xFF, B: 0x99, A: 0xFF}
	sky  = color.NRGBA{R: 0x87, G: 0xCE, B: 0xFA, A: 0xFF}
	lime = color.NRGBA{R: 0xAD, G: 0xFF, B: 0x2F, A: 0xFF}
	mint = color.NRGBA{R: 0x90, G: 0xEE, B: 0x90, A: 0xFF}

	// DefaultCellColor is used for atomic numbers without an entry.
	DefaultCellColor = color.NRGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 0xFF}
)

var cellColors = map[int]color.NRGBA{
	1: rose, 2: rose, 3: rose, 4: rose, 5: pale, 6: pale,
	7: pale, 8: pale, 9: pale, 10: rose, 11: rose, 12: rose,
	13: pale, 14: pale, 15: pale, 16: pale, 17: pale, 18: rose,
	19: rose, 20: rose, 21: sky, 22: sky, 23: sky, 24: sky,
	25: sky, 26: sky, 27: sky, 28: sky, 29: sky, 30: sky,
	31: pale, 32: pale, 33: lime, 34: pale, 35: pale, 36: rose,
	37: rose, 38: rose, 39: sky, 40: sky, 41: sky, 42: sky,
	43: sky, 44: sky, 45: sky, 46: sky, 47: sky, 48: sky,
	49: pale, 50: pale, 51: lime, 52: pale, 53: pale, 54: rose,
	55: rose, 56: rose, 57: mint, 58: mint, 59: mint, 60: mint,
	61: mint, 62: mint, 63: mint, 64: mint, 65: mint, 66: mint,
	67: mint, 68: mint, 69: mint, 70: mint, 71: mint, 72: sky,
	73: sky, 74: sky, 75: sky, 76: sky, 77: sky, 78: sky,
	79: sky, 80: sky, 81: pale, 82: pale, 83: lime, 84: pale,
	85: pale, 86: rose, 87: rose, 88: rose, 89: mint, 90: mint,
	91: mint, 92: mint, 93: mint, 94: mint, 95: mint, 96: mint,
	97: mint, 98: mint, 99: mint, 100: mint, 101: mint, 102: mint,
	103: mint, 104: sky, 105: sky, 106: sky, 107: sky, 108: sky,
	109: sky, 110: sky, 111: sky, 112: sky, 113: pale, 114: pale,
	115: pale, 116: pale, 117: pale, 118: rose,
}

// CellColor returns the background for atomicNumber, DefaultCellColor if none.
func CellColor(atomicNumber int) color.NRGBA {
	if c, ok := cellColors[atomicNumber]; ok {
		return c
	}
	return DefaultCellColor
}
