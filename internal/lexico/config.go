package lexico

// Config tunes a scan. The zero value is the canonical grammar.
type Config struct {
	// accept ' as a string delimiter in addition to "
	SingleQuotes bool
	// width of a tab in the caret line of DumpErrors, 0 echoes the tab
	TabWidth int
}
