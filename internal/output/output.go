// Package output renders extracted webhook lists for humans, scripts and
// GitHub Actions step outputs.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Output formats accepted by Write.
const (
	FormatLines = "lines"
	FormatJSON  = "json"
)

// Write renders urls to w, one per line or as a JSON array.
func Write(w io.Writer, urls []string, format string) error {
	switch format {
	case FormatLines, "":
		for _, u := range urls {
			if _, err := fmt.Fprintln(w, u); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(nonNil(urls))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// AppendGitHubOutput appends the webhooks and count step outputs to the
// file at path, in the KEY=VALUE form the Actions runner reads.
func AppendGitHubOutput(path string, urls []string) error {
	var encoded bytes.Buffer
	enc := json.NewEncoder(&encoded)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(nonNil(urls)); err != nil {
		return fmt.Errorf("encode webhooks: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open github output %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "webhooks=%s\ncount=%d\n", bytes.TrimSpace(encoded.Bytes()), len(urls)); err != nil {
		return fmt.Errorf("write github output %s: %w", path, err)
	}
	return f.Close()
}

func nonNil(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}
