package asset

import "testing"

func TestOnNativeVideoHost(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=abc", true},
		{"https://youtu.be/abc", true},
		{"https://player.vimeo.com/video/123", true},
		{"https://fast.wistia.net/embed/iframe/x", true},
		{"https://www.loom.com/share/x", true},
		{"https://cdn.example.com/signed/clip.mp4?sig=x", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := onNativeVideoHost(tc.url); got != tc.want {
			t.Errorf("onNativeVideoHost(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestTweetID(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"https://twitter.com/user/status/1234567890", "1234567890"},
		{"https://twitter.com/user/status/1234567890?s=20&t=xyz", "1234567890"},
		{"no-slashes", ""},
	}

	for _, tc := range cases {
		if got := tweetID(tc.src); got != tc.want {
			t.Errorf("tweetID(%q) = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestVideoID(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://player.vimeo.com/video/123", ""},
		{"https://example.com/", ""},
		{"://bad url", ""},
	}

	for _, tc := range cases {
		if got := videoID(tc.src); got != tc.want {
			t.Errorf("videoID(%q) = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestNormalizeGist(t *testing.T) {
	if got := normalizeGist("https://gist.github.com/u/abc"); got != "https://gist.github.com/u/abc.pibb" {
		t.Errorf("unexpected %q", got)
	}
	if got := normalizeGist("https://gist.github.com/u/abc.pibb"); got != "https://gist.github.com/u/abc.pibb" {
		t.Errorf("suffix must not double: %q", got)
	}
}
