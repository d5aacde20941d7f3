package format

// Marker is a literal substring denoting an inline Markdown construct.
// Markers wrap a selection symmetrically on both sides.
type Marker string

// Inline wrap markers.
const (
	MarkerBold   Marker = "**"
	MarkerItalic Marker = "*"
	MarkerCode   Marker = "`"
)

// Line prefixes toggled by TogglePrefix.
const (
	PrefixH1       = "# "
	PrefixH2       = "## "
	PrefixH3       = "### "
	PrefixBullet   = "- "
	PrefixNumbered = "1. "
	PrefixQuote    = "> "
)

// Fence is the token delimiting a fenced code block.
const Fence = "```"

// HeadingPrefixes is the exclusive group of heading levels: applying one
// member to a line removes any other member already present.
var HeadingPrefixes = []string{PrefixH1, PrefixH2, PrefixH3}

// Placeholder keys resolved through the engine's placeholder provider.
const (
	KeyBold     = "bold"
	KeyItalic   = "italic"
	KeyCode     = "code"
	KeyLinkText = "link.text"
	KeyLinkURL  = "link.url"
)

// placeholderKey maps a built-in marker to its placeholder key.
func placeholderKey(m Marker) string {
	switch m {
	case MarkerBold:
		return KeyBold
	case MarkerItalic:
		return KeyItalic
	case MarkerCode:
		return KeyCode
	default:
		return ""
	}
}
