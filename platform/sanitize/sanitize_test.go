package sanitize

import "testing"

func TestTextStripsTagsAndTrims(t *testing.T) {
	cases := map[string]string{
		"  plain text  ":                       "plain text",
		"<b>bold</b> claim":                    "bold claim",
		"before <script>alert(1)</script> end": "before alert(1) end",
		"&lt;img src=x&gt;":                    "",
		"a &amp; b":                            "a & b",
		"":                                     "",
	}
	for in, want := range cases {
		if got := Text(in); got != want {
			t.Fatalf("Text(%q): got %q, want %q", in, got, want)
		}
	}
}
