package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassSheet    ChromeClass = "sheetgen-sheet"
	ClassHeader   ChromeClass = "sheetgen-header"
	ClassTabs     ChromeClass = "sheetgen-tabs"
	ClassTab      ChromeClass = "sheetgen-tab"
	ClassPanel    ChromeClass = "sheetgen-panel"
	ClassSection  ChromeClass = "sheetgen-section"
	ClassField    ChromeClass = "sheetgen-field"
	ClassChips    ChromeClass = "sheetgen-chips"
	ClassChip     ChromeClass = "sheetgen-chip"
	ClassTraitHdr ChromeClass = "sheetgen-trait-header"
	ClassError    ChromeClass = "sheetgen-error"
	ClassActive   ChromeClass = "is-active"
)
