package core

// Color is a "#rrggbb" hex string. The empty string means the terminal default.
// Hosts translate it to their own color model (lipgloss, image/color).
type Color string

// Palette used by the runner.
const (
	ColorDefault Color = ""
	ColorActor   Color = "#ff6b6b"
	ColorGlow    Color = "#4ecdc4"
	ColorGround  Color = "#8b7355"
	ColorGrass   Color = "#90ee90"
	ColorCloud   Color = "#e0f6ff"
	ColorHUD     Color = "#f5f5f5"
	ColorGray    Color = "#8a8a8a"
)
