package palconv

// Examples holds a sample palette for each scheme, taken from the games the
// encodings were first written for. The RGB24 sample is the Genesis palette.
var Examples = map[Scheme]EncodedBuffer{
	RGB24: {
		Data: "6d6d6d 000000 ffffff ffb66d b66d00 6d4900 ffff00 ffb600 ff0000 006dff 00ffff 00b6db 00ff6d 00b66d b6b6ff 6d6db6",
	},
	Arcade: {
		Data: "F1 11 F0 6B FE CA FB 97 F8 60 F7 50 F9 AC F7 8A F5 68 FA A7 FC C9 FF FF FA BD FC 60 F8 00 F1 11",
	},
	ArcadeSplit: {
		Data: "06 00 CA A8 75 54 88 66 44 99 84 60 AA C0 C7 00",
		Aux:  "B0 00 80 60 00 00 A0 80 60 00 00 00 C0 00 00 00",
	},
	CRAM: {
		Data: "06 66 00 00 0E EE 06 AE 00 6A 00 46 00 EE 00 AE 00 0E 0E 60 0E E0 0C A0 06 E0 06 A0 0E AA 0A 66",
	},
	BGR32: {
		Data: "666 000 EEE 6AE 06A 046 0EE 0AE 00E E60 EE0 CA0 6E0 6A0 EAA A66",
	},
	RGB32: {
		Data: "666 000 EEE EA6 A60 640 EE0 EA0 E00 06E 0EE 0AC 0E6 0A6 AAE 66A",
	},
}
