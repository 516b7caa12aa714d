package collector

import (
	"net/url"
	"strings"
)

// VideoID extracts the video id from a watch URL. Supported forms:
// watch?v=ID, youtu.be/ID, /shorts/ID and /live/ID. Returns "" when no
// id can be derived.
func VideoID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch {
	case host == "youtu.be":
		return firstSegment(u.Path)
	case host == "youtube.com" || host == "m.youtube.com" || host == "music.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			return v
		}
		for _, prefix := range []string{"/shorts/", "/live/", "/embed/"} {
			if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
				return firstSegment(rest)
			}
		}
	}
	return ""
}

func firstSegment(path string) string {
	return strings.SplitN(strings.Trim(path, "/"), "/", 2)[0]
}
