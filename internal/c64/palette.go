package c64

// Palette is the canonical 16-color C64 palette as ARGB8888 values,
// grounded on emudore's io.cpp init_color_palette() table (spec.md §8
// scenario 6).
var Palette = [16]uint32{
	0xFF000000, // 0 black
	0xFFFFFFFF, // 1 white
	0xFFAB3126, // 2 red
	0xFF66DAFF, // 3 cyan
	0xFFBB3FB8, // 4 purple
	0xFF55CE58, // 5 green
	0xFF1D0E97, // 6 blue
	0xFFEAF57C, // 7 yellow
	0xFFB97418, // 8 orange
	0xFF785300, // 9 brown
	0xFFDD9387, // 10 light red
	0xFF5B5B5B, // 11 grey 1
	0xFF8B8B8B, // 12 grey 2
	0xFFB0F4AC, // 13 light green
	0xFFAA9DEF, // 14 light blue
	0xFFB8B8B8, // 15 grey 3
}
