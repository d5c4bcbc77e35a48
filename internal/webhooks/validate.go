package webhooks

import "net/url"

// IsAbsoluteURL reports whether s parses as a URL with both a scheme and a host.
// The check is purely syntactic: any scheme is accepted and nothing is resolved.
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Validate returns the values of candidates that are absolute URLs, in order.
// Non-scalar candidates are always rejected. The result is never nil.
func Validate(candidates []Candidate) []string {
	valid, _ := partition(candidates)
	return valid
}

func partition(candidates []Candidate) (valid []string, rejected []Candidate) {
	valid = make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Scalar && IsAbsoluteURL(c.Value) {
			valid = append(valid, c.Value)
			continue
		}
		rejected = append(rejected, c)
	}
	return valid, rejected
}
