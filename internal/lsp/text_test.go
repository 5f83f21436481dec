package lsp

import "testing"

func TestApplyChanges(t *testing.T) {
	rng := func(l1, c1, l2, c2 uint32) *lspRange {
		return &lspRange{Start: position{Line: l1, Character: c1}, End: position{Line: l2, Character: c2}}
	}
	cases := []struct {
		name    string
		text    string
		changes []textDocumentContentChangeEvent
		want    string
	}{
		{"full", "old", []textDocumentContentChangeEvent{{Text: "new"}}, "new"},
		{"insert", "ab\ncd", []textDocumentContentChangeEvent{{Range: rng(1, 1, 1, 1), Text: "X"}}, "ab\ncXd"},
		{"delete across lines", "ab\ncd", []textDocumentContentChangeEvent{{Range: rng(0, 1, 1, 1), Text: ""}}, "ad"},
		{"past end clamps", "ab", []textDocumentContentChangeEvent{{Range: rng(5, 0, 9, 0), Text: "!"}}, "ab!"},
		{"column past line end", "ab\ncd", []textDocumentContentChangeEvent{{Range: rng(0, 99, 0, 99), Text: "!"}}, "ab!\ncd"},
		{"surrogate pair", "😀x", []textDocumentContentChangeEvent{{Range: rng(0, 2, 0, 3), Text: "y"}}, "😀y"},
		{"sequence", "a", []textDocumentContentChangeEvent{{Text: "abc"}, {Range: rng(0, 0, 0, 1), Text: ""}}, "bc"},
		{"bare cr is a line break", "ab\rcd", []textDocumentContentChangeEvent{{Range: rng(1, 0, 1, 1), Text: "X"}}, "ab\rXd"},
		{"crlf counts once", "ab\r\ncd\nef", []textDocumentContentChangeEvent{{Range: rng(2, 1, 2, 1), Text: "!"}}, "ab\r\ncd\ne!f"},
		{"column stops before cr", "ab\rcd", []textDocumentContentChangeEvent{{Range: rng(0, 9, 0, 9), Text: "!"}}, "ab!\rcd"},
	}
	for _, tc := range cases {
		if got := applyChanges(tc.text, tc.changes); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestLineAt(t *testing.T) {
	text := "one\r\ntwo\nthree\rfour"
	for i, want := range []string{"one", "two", "three", "four", ""} {
		if got := lineAt(text, uint32(i)); got != want {
			t.Fatalf("line %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestCanonicalURI(t *testing.T) {
	cases := map[string]string{
		"file:///C:/src/a.pineapple":   "file:///c:/src/a.pineapple",
		"file:///c%3A/src/a.pineapple": "file:///c:/src/a.pineapple",
		"file:///tmp/a%20b.pineapple":  "file:///tmp/a%20b.pineapple",
		"untitled:Untitled-1":          "untitled:Untitled-1",
		"":                             "",
	}
	for in, want := range cases {
		if got := canonicalURI(in); got != want {
			t.Fatalf("canonicalURI(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestURIPathRoundTrip(t *testing.T) {
	uri := pathToURI("/tmp/x.pineapple")
	if got := uriToPath(uri); got != "/tmp/x.pineapple" {
		t.Fatalf("unexpected path %q from %q", got, uri)
	}
	if uriToPath("untitled:1") != "" {
		t.Fatal("non-file URIs have no path")
	}
}
