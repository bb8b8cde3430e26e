package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// FloatOrDefault returns *p when p is non-nil, otherwise the fallback.
// Optional numeric fields arrive as pointers from JSON documents.
func FloatOrDefault(fallback float64, p *float64) float64 {
	if p != nil {
		return *p
	}
	return fallback
}

// BoolOrDefault returns *p when p is non-nil, otherwise the fallback.
func BoolOrDefault(fallback bool, p *bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}

// IntOrDefault returns *p when p is non-nil, otherwise the fallback.
func IntOrDefault(fallback int, p *int) int {
	if p != nil {
		return *p
	}
	return fallback
}
