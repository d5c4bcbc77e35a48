package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWrite(t *testing.T) {
	urls := []string{"https://a.example.com", "https://b.example.com/hook"}

	tests := []struct {
		name   string
		urls   []string
		format string
		want   string
	}{
		{name: "lines", urls: urls, format: FormatLines, want: "https://a.example.com\nhttps://b.example.com/hook\n"},
		{name: "default is lines", urls: urls, format: "", want: "https://a.example.com\nhttps://b.example.com/hook\n"},
		{name: "json", urls: urls, format: FormatJSON, want: "[\"https://a.example.com\",\"https://b.example.com/hook\"]\n"},
		{name: "empty lines", urls: nil, format: FormatLines, want: ""},
		{name: "empty json", urls: nil, format: FormatJSON, want: "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.urls, tt.format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Write() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		if err := Write(&bytes.Buffer{}, urls, "xml"); err == nil {
			t.Error("Write() expected error for unknown format")
		}
	})
}

func TestAppendGitHubOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")
	if err := os.WriteFile(path, []byte("previous=1\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := AppendGitHubOutput(path, []string{"https://a.example.com"}); err != nil {
		t.Fatalf("AppendGitHubOutput() error = %v", err)
	}
	if err := AppendGitHubOutput(path, nil); err != nil {
		t.Fatalf("AppendGitHubOutput() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "previous=1\nwebhooks=[\"https://a.example.com\"]\ncount=1\nwebhooks=[]\ncount=0\n"
	if string(got) != want {
		t.Errorf("output file = %q, want %q", got, want)
	}
}

func TestWrite_NoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []string{"https://a.example.com/?a=1&b=2"}, FormatJSON); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "[\"https://a.example.com/?a=1&b=2\"]\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}
