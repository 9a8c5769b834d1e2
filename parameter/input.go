package parameter

// Terminal scrolling
const (
	// ScrollLineStep is one arrow key or wheel notch in page pixels
	ScrollLineStep = 48.0

	// ScrollPageFraction of the viewport height moves per page key
	ScrollPageFraction = 0.9
)

// Terminal log file
const (
	LogDir      = "logs"
	LogFileName = "folio.log"
	MaxLogSize  = 10 * 1024 * 1024
)
