package theme

// builtins holds the closed set of named palettes. Every entry uses the same
// color for header, headerText and line.
var builtins = map[string]Palette{
	"light": {
		Bg: "#ececed", Text: "#555555", Em: "#666666",
		Header: "#333333", HeaderText: "#333333", Line: "#333333",
		Quote1Bg: "#e0e0e0", Quote1Text: "#444444", Quote2Bg: "#dcdcdc", Quote2Text: "#222222",
		TagText: "#808080", Divider: "#d0d0d0",
	},
	"dark": {
		Bg: "#252525", Text: "#aaaaaa", Em: "#999999",
		Header: "#f3f3f3", HeaderText: "#f3f3f3", Line: "#f3f3f3",
		Quote1Bg: "#333333", Quote1Text: "#cccccc", Quote2Bg: "#3a3a3a", Quote2Text: "#ffffff",
		TagText: "#999999", Divider: "#4a4a4a",
	},
	"oldMoneyLight": {
		Bg: "#efe9da", Text: "#574d34", Em: "#923838",
		Header: "#56412b", HeaderText: "#56412b", Line: "#56412b",
		Quote1Bg: "#f7f3e8", Quote1Text: "#184f66", Quote2Bg: "#f7f3e8", Quote2Text: "#634121",
		TagText: "#8b7355", Divider: "#d4c9b0",
	},
	"oldMoneyDark": {
		Bg: "#141e23", Text: "#a08e6c", Em: "#aa7b5c",
		Header: "#bf9f6f", HeaderText: "#bf9f6f", Line: "#bf9f6f",
		Quote1Bg: "#192228", Quote1Text: "#3092ab", Quote2Bg: "#192228", Quote2Text: "#d0a053",
		TagText: "#a89070", Divider: "#2a3540",
	},
	"basic": {
		Bg: "#ffffff", Text: "#2c3e50", Em: "#2d5af0",
		Header: "#162a3e", HeaderText: "#162a3e", Line: "#162a3e",
		Quote1Bg: "#f0f2f5", Quote1Text: "#2c3e50", Quote2Bg: "#f0f2f5", Quote2Text: "#162a3e",
		TagText: "#6c8da8", Divider: "#c8d6e0",
	},
	"rose": {
		Bg: "#fefbfd", Text: "#5c4a5a", Em: "#c77d8e",
		Header: "#8b5a6a", HeaderText: "#8b5a6a", Line: "#8b5a6a",
		Quote1Bg: "#faf5f7", Quote1Text: "#6b4a5a", Quote2Bg: "#f8f0f3", Quote2Text: "#7d5a6a",
		TagText: "#b08090", Divider: "#e8d5db",
	},
	"ocean": {
		Bg: "#f5f9fc", Text: "#3d5a6f", Em: "#2980b9",
		Header: "#1a4a66", HeaderText: "#1a4a66", Line: "#1a4a66",
		Quote1Bg: "#e8f4fa", Quote1Text: "#2c5d7a", Quote2Bg: "#dceef7", Quote2Text: "#1e5a78",
		TagText: "#5a8aa8", Divider: "#c8dce8",
	},
	"forest": {
		Bg: "#f7faf5", Text: "#3d4f3a", Em: "#5a8a50",
		Header: "#2d5a28", HeaderText: "#2d5a28", Line: "#2d5a28",
		Quote1Bg: "#eef5ec", Quote1Text: "#3d5a38", Quote2Bg: "#e5f0e3", Quote2Text: "#2a5025",
		TagText: "#6a9a60", Divider: "#d0e0cc",
	},
	"lavender": {
		Bg: "#faf8fc", Text: "#4a4560", Em: "#7b68a8",
		Header: "#5a4a7a", HeaderText: "#5a4a7a", Line: "#5a4a7a",
		Quote1Bg: "#f3f0f8", Quote1Text: "#5a5070", Quote2Bg: "#ece8f5", Quote2Text: "#4a4068",
		TagText: "#8a7aaa", Divider: "#dcd5e8",
	},
	"warm": {
		Bg: "#fdfbf8", Text: "#5a4a3d", Em: "#c08860",
		Header: "#6a5040", HeaderText: "#6a5040", Line: "#6a5040",
		Quote1Bg: "#f8f4f0", Quote1Text: "#5a4a40", Quote2Bg: "#f5efe8", Quote2Text: "#6a5545",
		TagText: "#a08a70", Divider: "#e0d5c8",
	},
	"sage": {
		Bg: "#f8faf7", Text: "#4a5547", Em: "#6b8e65",
		Header: "#3a4f35", HeaderText: "#3a4f35", Line: "#3a4f35",
		Quote1Bg: "#f0f4ee", Quote1Text: "#4a5a45", Quote2Bg: "#e8f0e5", Quote2Text: "#3a4f38",
		TagText: "#7a9a70", Divider: "#d5e0d0",
	},
	"coral": {
		Bg: "#fefaf9", Text: "#5a4845", Em: "#e07a5f",
		Header: "#8a5545", HeaderText: "#8a5545", Line: "#8a5545",
		Quote1Bg: "#faf3f1", Quote1Text: "#6a5048", Quote2Bg: "#f7ebe8", Quote2Text: "#7a5848",
		TagText: "#c08a75", Divider: "#e8d5d0",
	},
	"mint": {
		Bg: "#f7fcfa", Text: "#3d5a54", Em: "#4a9d88",
		Header: "#2a5048", HeaderText: "#2a5048", Line: "#2a5048",
		Quote1Bg: "#eef7f4", Quote1Text: "#3d5a50", Quote2Bg: "#e5f3ee", Quote2Text: "#2d5545",
		TagText: "#6aaa95", Divider: "#d0e8dd",
	},
	"mustard": {
		Bg: "#fdfbf5", Text: "#5a5540", Em: "#d4a841",
		Header: "#6a5a35", HeaderText: "#6a5a35", Line: "#6a5a35",
		Quote1Bg: "#f9f6ec", Quote1Text: "#5a5545", Quote2Bg: "#f5f0e0", Quote2Text: "#6a5a40",
		TagText: "#b09860", Divider: "#e5ddc8",
	},
	"plum": {
		Bg: "#faf8fb", Text: "#523f52", Em: "#9d5f8f",
		Header: "#6a4a65", HeaderText: "#6a4a65", Line: "#6a4a65",
		Quote1Bg: "#f5f0f6", Quote1Text: "#5a4555", Quote2Bg: "#f0e8f2", Quote2Text: "#6a4a60",
		TagText: "#aa7a9a", Divider: "#e0d0dc",
	},
	"sky": {
		Bg: "#f8fbfd", Text: "#3d5565", Em: "#5a9ace",
		Header: "#2a4a5a", HeaderText: "#2a4a5a", Line: "#2a4a5a",
		Quote1Bg: "#f0f6fa", Quote1Text: "#3d5560", Quote2Bg: "#e8f2f8", Quote2Text: "#2d4f5a",
		TagText: "#7aabce", Divider: "#d5e5ed",
	},
	"terracotta": {
		Bg: "#fdfaf8", Text: "#5a4840", Em: "#c87055",
		Header: "#7a5045", HeaderText: "#7a5045", Line: "#7a5045",
		Quote1Bg: "#f9f3f0", Quote1Text: "#5a4a42", Quote2Bg: "#f5ebe5", Quote2Text: "#6a5040",
		TagText: "#b08570", Divider: "#e5d5cc",
	},
	"teal": {
		Bg: "#f7fafb", Text: "#3d5558", Em: "#4a8a88",
		Header: "#2a5053", HeaderText: "#2a5053", Line: "#2a5053",
		Quote1Bg: "#eff6f7", Quote1Text: "#3d5555", Quote2Bg: "#e7f2f3", Quote2Text: "#2d5250",
		TagText: "#6a9d9a", Divider: "#d5e5e5",
	},
	"peach": {
		Bg: "#fefbf9", Text: "#5a4d45", Em: "#e8a087",
		Header: "#8a5f4a", HeaderText: "#8a5f4a", Line: "#8a5f4a",
		Quote1Bg: "#faf5f2", Quote1Text: "#5a4f48", Quote2Bg: "#f7efe9", Quote2Text: "#6a5545",
		TagText: "#c09080", Divider: "#e8ddd5",
	},
	"slate": {
		Bg: "#f8f9fa", Text: "#475259", Em: "#5a7a88",
		Header: "#354550", HeaderText: "#354550", Line: "#354550",
		Quote1Bg: "#f2f4f5", Quote1Text: "#475560", Quote2Bg: "#eceff1", Quote2Text: "#3a4f58",
		TagText: "#708a95", Divider: "#d8dfe3",
	},
	"espresso": {
		Bg: "#faf8f6", Text: "#4a3d35", Em: "#8b6f47",
		Header: "#3a2920", HeaderText: "#3a2920", Line: "#3a2920",
		Quote1Bg: "#f5f2ee", Quote1Text: "#503f35", Quote2Bg: "#efe8e0", Quote2Text: "#5a4535",
		TagText: "#9a7f60", Divider: "#ddd0c0",
	},
	"burgundy": {
		Bg: "#fefbfc", Text: "#5a3d45", Em: "#a84860",
		Header: "#6a2d3f", HeaderText: "#6a2d3f", Line: "#6a2d3f",
		Quote1Bg: "#faf5f7", Quote1Text: "#604048", Quote2Bg: "#f5eaed", Quote2Text: "#7a3d4a",
		TagText: "#b86878", Divider: "#e8d0d8",
	},
	"indigo": {
		Bg: "#f8f9fc", Text: "#3d4560", Em: "#5a68a8",
		Header: "#2d355a", HeaderText: "#2d355a", Line: "#2d355a",
		Quote1Bg: "#f0f2f8", Quote1Text: "#404a65", Quote2Bg: "#e8ebf5", Quote2Text: "#354060",
		TagText: "#6a78b8", Divider: "#d0d8e8",
	},
	"olive": {
		Bg: "#fafaf5", Text: "#4a4d3d", Em: "#7a8050",
		Header: "#3a4030", HeaderText: "#3a4030", Line: "#3a4030",
		Quote1Bg: "#f5f5ee", Quote1Text: "#4f5240", Quote2Bg: "#eff0e5", Quote2Text: "#45483a",
		TagText: "#8a9060", Divider: "#dde0d0",
	},
	"ash": {
		Bg: "#fafafa", Text: "#4a4a4a", Em: "#707070",
		Header: "#2a2a2a", HeaderText: "#2a2a2a", Line: "#2a2a2a",
		Quote1Bg: "#f2f2f2", Quote1Text: "#505050", Quote2Bg: "#ebebeb", Quote2Text: "#3a3a3a",
		TagText: "#8a8a8a", Divider: "#d5d5d5",
	},
	"aqua": {
		Bg: "#f7fbfc", Text: "#3d5558", Em: "#4a9a9a",
		Header: "#2a4a4d", HeaderText: "#2a4a4d", Line: "#2a4a4d",
		Quote1Bg: "#eff6f7", Quote1Text: "#405a5a", Quote2Bg: "#e7f2f3", Quote2Text: "#355050",
		TagText: "#6aaaaa", Divider: "#d0e5e7",
	},
	"chocolate": {
		Bg: "#fcfaf8", Text: "#4d3a2a", Em: "#9a6040",
		Header: "#3d2515", HeaderText: "#3d2515", Line: "#3d2515",
		Quote1Bg: "#f7f4f0", Quote1Text: "#5a402a", Quote2Bg: "#f2ebe3", Quote2Text: "#6a4530",
		TagText: "#aa7550", Divider: "#e0d0c0",
	},
	"claret": {
		Bg: "#fdfafa", Text: "#5a3a3a", Em: "#b85050",
		Header: "#6a2525", HeaderText: "#6a2525", Line: "#6a2525",
		Quote1Bg: "#faf3f3", Quote1Text: "#603f3f", Quote2Bg: "#f5e8e8", Quote2Text: "#7a3535",
		TagText: "#c86868", Divider: "#e8d0d0",
	},
	"charcoal": {
		Bg: "#f9f9f9", Text: "#454545", Em: "#656565",
		Header: "#252525", HeaderText: "#252525", Line: "#252525",
		Quote1Bg: "#f1f1f1", Quote1Text: "#4a4a4a", Quote2Bg: "#e9e9e9", Quote2Text: "#353535",
		TagText: "#858585", Divider: "#d3d3d3",
	},
	"grape": {
		Bg: "#fbf9fc", Text: "#4a3f52", Em: "#8a68a0",
		Header: "#5a3a68", HeaderText: "#5a3a68", Line: "#5a3a68",
		Quote1Bg: "#f5f0f8", Quote1Text: "#554560", Quote2Bg: "#efe8f5", Quote2Text: "#604a70",
		TagText: "#9a78b0", Divider: "#dcd0e8",
	},
}
