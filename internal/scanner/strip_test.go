package scanner

import (
	"strings"
	"testing"
)

// TestStripComments verifies comment removal and literal preservation.
func TestStripComments(t *testing.T) {
	t.Parallel()

	t.Run("removes line and block comments", func(t *testing.T) {
		t.Parallel()

		src := "int a; // trailing\n/* leading */ int b;\n"
		got, diags := StripComments(src)

		want := "int a; \n int b;\n"
		if got != want {
			t.Errorf("StripComments() = %q, want %q", got, want)
		}
		if diags.UnterminatedComments != 0 {
			t.Errorf("expected 0 unterminated comments, got %d", diags.UnterminatedComments)
		}
	})

	t.Run("preserves comment delimiters inside string literals", func(t *testing.T) {
		t.Parallel()

		src := `var s = "see /* note */ here"; // real comment`
		got, _ := StripComments(src)

		if !strings.Contains(got, `"see /* note */ here"`) {
			t.Errorf("literal content was altered: %q", got)
		}
		if strings.Contains(got, "real comment") {
			t.Errorf("real comment survived stripping: %q", got)
		}
	})

	t.Run("preserves urls in string literals", func(t *testing.T) {
		t.Parallel()

		src := `var url = "http://example.com/path"; // link`
		got, _ := StripComments(src)

		if !strings.Contains(got, `"http://example.com/path"`) {
			t.Errorf("url literal was corrupted: %q", got)
		}
	})

	t.Run("preserves verbatim string literals", func(t *testing.T) {
		t.Parallel()

		src := `var v = @"// not a comment"; // yes a comment`
		got, _ := StripComments(src)

		want := `var v = @"// not a comment"; `
		if got != want {
			t.Errorf("StripComments() = %q, want %q", got, want)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		src := "a /* one */ b // two\nc \"/* keep */\" d\n@\"// keep\"\n"
		once, _ := StripComments(src)
		twice, _ := StripComments(once)

		if once != twice {
			t.Errorf("stripping is not idempotent:\n once %q\ntwice %q", once, twice)
		}
	})

	t.Run("unterminated block comment erases to end of input", func(t *testing.T) {
		t.Parallel()

		src := "int a; /* forgot to close\nint b;\n"
		got, diags := StripComments(src)

		if got != "int a; " {
			t.Errorf("StripComments() = %q, want %q", got, "int a; ")
		}
		if diags.UnterminatedComments != 1 {
			t.Errorf("expected 1 unterminated comment, got %d", diags.UnterminatedComments)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		got, _ := StripComments("")
		if got != "" {
			t.Errorf("expected empty output, got %q", got)
		}
	})
}

// TestCompactLines verifies line-break removal and that other whitespace is
// deliberately left alone.
func TestCompactLines(t *testing.T) {
	t.Parallel()

	t.Run("removes all line break characters", func(t *testing.T) {
		t.Parallel()

		src := "a\nb\r\nc\rd"
		if got := CompactLines(src); got != "abcd" {
			t.Errorf("CompactLines() = %q, want %q", got, "abcd")
		}
	})

	t.Run("does not collapse spaces or tabs", func(t *testing.T) {
		t.Parallel()

		src := "a  b\t\tc\n"
		if got := CompactLines(src); got != "a  b\t\tc" {
			t.Errorf("CompactLines() = %q, want %q", got, "a  b\t\tc")
		}
	})
}

// TestMinify verifies that stripping runs before compaction, so a line
// comment never swallows the code that followed it on the next line.
func TestMinify(t *testing.T) {
	t.Parallel()

	t.Run("strips then compacts", func(t *testing.T) {
		t.Parallel()

		src := "int a; // comment\nint b;\n"
		got, _ := Minify(src)

		want := "int a; int b;"
		if got != want {
			t.Errorf("Minify() = %q, want %q", got, want)
		}
	})

	t.Run("propagates diagnostics", func(t *testing.T) {
		t.Parallel()

		_, diags := Minify("x /* open")
		if diags.UnterminatedComments != 1 {
			t.Errorf("expected 1 unterminated comment, got %d", diags.UnterminatedComments)
		}
	})
}
