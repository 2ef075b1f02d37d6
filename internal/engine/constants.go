package engine

// Flags control the degradation ladder the orchestrator walks through
// when a first-pass extraction comes back too short. They are cleared
// one at a time, in this declaration order, and never re-set within a
// single Parse.
const (
	FlagStripUnlikelys = 1 << iota
	FlagWeightClasses
	FlagCleanConditionally
)

// Tunables pulled out of the algorithm so the scoring math in score.go
// reads like the arithmetic it is rather than a wall of magic numbers.
const (
	NTopCandidates       = 5
	WordThreshold        = 500
	MinimumTopCandidates = 3

	MinScoredTextLength = 25
	ClassWeightPositive = 25
	ClassWeightNegative = 25

	DivInitialScore        = 5.0
	BlockquoteInitialScore = 3.0
	NegativeListInitial    = -3.0
	HeadingInitialScore    = -5.0

	AncestorScoreDividerL0 = 1.0
	AncestorScoreDividerL1 = 2.0

	SiblingScoreMultiplier = 0.2
	MinSiblingThreshold    = 10.0

	ShortParagraphMaxLen = 80
	ByLineMaxLen         = 100
)

// TagsToScore are the elements collected for readability scoring.
var TagsToScore = []string{"SECTION", "H2", "H3", "H4", "H5", "H6", "P", "TD", "PRE"}

// DivToPElems are elements whose presence inside a DIV marks it as a
// block container rather than a paragraph-like leaf.
var DivToPElems = []string{"A", "BLOCKQUOTE", "DL", "DIV", "IMG", "OL", "P", "PRE", "TABLE", "UL", "SELECT"}

// AlterToDivExceptions are tags the sibling aggregator leaves alone
// instead of retagging to DIV before appending them to the article.
var AlterToDivExceptions = []string{"DIV", "ARTICLE", "SECTION", "P"}

// IDsToPreserve survive the final id-stripping pass in postprocess.go.
var IDsToPreserve = []string{"readability-content", "readability-page-1"}

// ClassesToPreserve survive the final class-stripping pass.
var ClassesToPreserve = []string{"readability-styled", "page"}

// PresentationalAttributes are stripped from every element during
// clean-styles.
var PresentationalAttributes = []string{
	"align", "background", "bgcolor", "border", "cellpadding",
	"cellspacing", "frame", "hspace", "rules", "style", "valign", "vspace",
}

// DeprecatedSizeAttributeElems additionally lose width/height during
// clean-styles.
var DeprecatedSizeAttributeElems = []string{"TABLE", "TH", "TD", "HR", "PRE"}

// readabilityStyledClass is the literal class the inline <p> wrappers
// get during DIV normalization (§4.6 step 5) and the marker clean-styles
// checks to skip a subtree.
const readabilityStyledClass = "readability-styled"

// scratch attribute names, written on elements so they survive node
// moves (goquery/x-net-html attach attributes to the node itself).
const (
	attrContentScore = "_readabilityContentScore"
	attrDataTable    = "_readabilityDataTable"
)
