package engine

import "regexp"

// Regex catalog: compiled once at process init, immutable, safe for
// concurrent readers. Grounded on the teacher's
// internal/readability/constants.go pattern set, trimmed and renamed
// to the roles spec.md assigns them.
var (
	// unlikelyCandidates flags class/id strings that usually mark
	// non-content chrome (ads, nav, sidebars, social widgets, ...).
	unlikelyCandidates = regexp.MustCompile(`(?i)-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)

	// okMaybeItsACandidate overrides unlikelyCandidates when both match.
	okMaybeItsACandidate = regexp.MustCompile(`(?i)and|article|body|column|content|main|shadow`)

	// positive and negative class/id weight patterns (§4.7).
	positive = regexp.MustCompile(`(?i)article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)
	negative = regexp.MustCompile(`(?i)-ad-|hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|foot|footer|footnote|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|tool|widget`)

	// byline marks likely author/dateline elements (§4.4).
	byline = regexp.MustCompile(`(?i)byline|author|dateline|writtenby|p-author`)

	// videos allows embed/object/iframe subtrees hosting known video
	// providers to survive §4.10's clean(object|embed|iframe).
	videos = regexp.MustCompile(`(?i)//(www\.)?((dailymotion|youtube|youtube-nocookie|vimeo|v\.qq)\.com|player\.vimeo\.com)`)

	// shareElements matches share-widget class/id strings (§4.10 step 4).
	shareElements = regexp.MustCompile(`(?i)(\b|_)(share|sharedaddy)(\b|_)`)

	// normalizeWhitespace collapses runs of 2+ whitespace to one space.
	normalizeWhitespace = regexp.MustCompile(`\s{2,}`)

	// innerTrimWhitespace collapses every run of whitespace (including
	// single tabs and newlines) to one space, for innerTrim (§4.12).
	innerTrimWhitespace = regexp.MustCompile(`[ \t\n\r\f\v]+`)

	// sentenceEndSpace is the short-paragraph predicate from §4.9,
	// kept verbatim per spec.md §9's open question rather than the
	// evidently-intended `\.( |$)`.
	sentenceEndSpace = regexp.MustCompile(`\.(| $) `)

	// titleSeparator detects a hierarchical separator surrounded by
	// spaces in a document title (§4.4 title heuristic, step 2).
	titleSeparator = regexp.MustCompile(` [|\-\\/>»] `)

	titleTrimTrailing = regexp.MustCompile(`(.*)[|\-\\/>»] .*`)
	titleTrimLeading  = regexp.MustCompile(`[^|\-\\/>»]*[|\-\\/>»](.*)`)
	titleSeparatorRun = regexp.MustCompile(`[|\-\\/>»]+`)

	// schemePrefix recognizes an absolute-URI scheme per RFC 3986.
	schemePrefix = regexp.MustCompile(`(?i)^[a-zA-Z][a-zA-Z0-9+\-.]*:`)

	// metaNamePattern and metaPropertyPattern classify <meta> tags
	// for title/description/author extraction (§4.4).
	metaNamePattern     = regexp.MustCompile(`(?i)^\s*((twitter)\s*:\s*)?(description|title)\s*$`)
	metaPropertyPattern = regexp.MustCompile(`(?i)^\s*og\s*:\s*(description|title)\s*$`)

	// jsonLDArticleType narrows JSON-LD @type values to article-shaped
	// schema.org types before trusting their fields as metadata.
	jsonLDArticleType = regexp.MustCompile(`^Article|AdvertiserContentArticle|NewsArticle|AnalysisNewsArticle|AskPublicNewsArticle|BackgroundNewsArticle|OpinionNewsArticle|ReportageNewsArticle|ReviewNewsArticle|Report|SatiricalArticle|ScholarlyArticle|MedicalScholarlyArticle|SocialMediaPosting|BlogPosting|LiveBlogPosting|DiscussionForumPosting|TechArticle|APIReference$`)
	jsonLDContext     = regexp.MustCompile(`"@context"\s*:\s*"https?://schema\.org"`)
	jsonLDType        = regexp.MustCompile(`"@type"\s*:\s*"([^"]+)"`)
	jsonLDTitle       = regexp.MustCompile(`"(?:name|headline)"\s*:\s*"([^"]+)"`)
	jsonLDAuthor      = regexp.MustCompile(`"author"\s*:\s*\{\s*"name"\s*:\s*"([^"]+)"`)
	jsonLDDescription = regexp.MustCompile(`"description"\s*:\s*"([^"]+)"`)
	jsonLDSiteName    = regexp.MustCompile(`"publisher"\s*:\s*\{\s*"name"\s*:\s*"([^"]+)"`)
)
