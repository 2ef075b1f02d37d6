package engine

import (
	"net/url"
	"strings"
)

// absolutize resolves a possibly-relative reference against base
// (§4.5). Each branch is checked in order; the first match wins.
//
// The protocol-relative branch ("//...") is resolved as
// scheme://host/... per RFC 3986, not the scheme://ref[2:] form a
// naive string-slice implementation tends to produce — both agree
// whenever ref begins with exactly two slashes, which is the only
// case this branch is reached for.
func absolutize(base *url.URL, ref string) string {
	if ref == "" || schemePrefix.MatchString(ref) {
		return ref
	}

	if strings.HasPrefix(ref, "//") {
		return base.Scheme + ":" + ref
	}

	if strings.HasPrefix(ref, "/") {
		return prePath(base) + ref
	}

	if strings.HasPrefix(ref, "./") {
		return pathBase(base) + ref[2:]
	}

	if strings.HasPrefix(ref, "#") {
		return ref
	}

	return pathBase(base) + ref
}

// prePath is the scheme-plus-authority prefix of a URI.
func prePath(u *url.URL) string {
	return u.Scheme + "://" + u.Host
}

// pathBase is prePath plus the path truncated after its last slash.
func pathBase(u *url.URL) string {
	path := u.Path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		path = path[:idx+1]
	} else {
		path = "/"
	}
	return prePath(u) + path
}
