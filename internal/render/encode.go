package render

import "net/url"

// EncodeFilePath percent-encodes the characters of path that are unsafe in
// a file:// URI, preserving the path separators. Already-safe paths come
// back unchanged, which is what the on-demand encode mode keys off.
func EncodeFilePath(path string) string {
	u := url.URL{Path: path}
	return u.EscapedPath()
}
