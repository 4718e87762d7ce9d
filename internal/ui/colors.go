package ui

// Accessors for the active theme's escape codes. Call sites use these instead
// of reading the theme struct so theme switches apply immediately everywhere.

// ColorPrimary returns the active primary color code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the active secondary color code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the active success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the active warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the active error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorBlue returns the active primary color code (alias kept for call-site
// readability in tabular output).
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the active info color code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBold returns the active bold code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the active underline code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the active reset code.
func ColorReset() string { return GetCurrentTheme().Reset }
