package asset

import (
	"net/url"
	"strings"
)

// nativeVideoHosts is the fixed allow-list of hosts whose signed video URLs
// still go through the frame/widget path rather than native playback.
var nativeVideoHosts = []string{
	"youtube", "youtu.be", "vimeo", "wistia", "loom", "videoask", "getcloudapp",
}

// onNativeVideoHost reports whether the URL references a known video platform.
// Matching is by substring: signed URLs embed the platform name in opaque
// positions, not always in the host component.
func onNativeVideoHost(u string) bool {
	for _, h := range nativeVideoHosts {
		if strings.Contains(u, h) {
			return true
		}
	}
	return false
}

// tweetID extracts the external tweet id: the trailing path segment of the
// stored source URL, stripped of any query string.
func tweetID(src string) string {
	base, _, _ := strings.Cut(src, "?")
	idx := strings.LastIndexByte(base, '/')
	if idx < 0 {
		return ""
	}
	return base[idx+1:]
}

// videoID extracts a recognizable video-platform identifier from a URL.
// Covers watch?v=<id>, youtu.be/<id>, and /embed/<id> forms.
func videoID(src string) string {
	u, err := url.Parse(src)
	if err != nil {
		return ""
	}

	if id := u.Query().Get("v"); id != "" {
		return id
	}

	path := strings.Trim(u.Path, "/")
	segs := strings.Split(path, "/")
	if len(segs) == 0 || segs[len(segs)-1] == "" {
		return ""
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host == "youtu.be" {
		return segs[0]
	}
	for i, s := range segs {
		if s == "embed" && i+1 < len(segs) {
			return segs[i+1]
		}
	}
	return ""
}

// gistSuffix is the rendered-fragment suffix required on gist sources.
const gistSuffix = ".pibb"

// normalizeGist appends the rendered-fragment suffix when absent.
func normalizeGist(src string) string {
	if strings.HasSuffix(src, gistSuffix) {
		return src
	}
	return src + gistSuffix
}
