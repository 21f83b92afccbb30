package core

// Color is a cell or fill color in hex notation: "#rrggbb", or "#rrggbbaa"
// when the fill is translucent. The empty Color means the terminal default.
type Color string

// Colors used by the arena chrome.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorGray    Color = "#8a8a8a"
	ColorYellow  Color = "#ffd75f"
)
