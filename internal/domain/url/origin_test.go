package url

import (
	"testing"

	"github.com/shadowflee/fluxer/internal/domain/entity"
)

func TestSameOrigin(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		reference string
		want      bool
	}{
		{
			name:      "case-insensitive scheme and host with explicit default port",
			candidate: "HTTPS://Example.com",
			reference: "https://example.com:443",
			want:      true,
		},
		{
			name:      "scheme mismatch",
			candidate: "http://example.com",
			reference: "https://example.com",
			want:      false,
		},
		{
			name:      "path query and fragment ignored",
			candidate: "https://example.com/app/channels?x=1#/channel/9",
			reference: "https://example.com/",
			want:      true,
		},
		{
			name:      "http default port",
			candidate: "http://chat.local:80/login",
			reference: "http://chat.local",
			want:      true,
		},
		{
			name:      "port mismatch",
			candidate: "https://example.com:8443",
			reference: "https://example.com",
			want:      false,
		},
		{
			name:      "subdomain is another origin",
			candidate: "https://evil.example.com",
			reference: "https://example.com",
			want:      false,
		},
		{
			name:      "unknown scheme without port never matches",
			candidate: "ftp://example.com",
			reference: "ftp://example.com",
			want:      false,
		},
		{
			name:      "candidate without host",
			candidate: "mailto:someone@example.com",
			reference: "https://example.com",
			want:      false,
		},
		{
			name:      "reference without host",
			candidate: "https://example.com",
			reference: "file:///android_asset/error.html",
			want:      false,
		},
		{
			name:      "unparseable candidate",
			candidate: "https://exa mple.com:%zz",
			reference: "https://example.com",
			want:      false,
		},
		{
			name:      "empty candidate",
			candidate: "",
			reference: "https://example.com",
			want:      false,
		},
		{
			name:      "ipv6 literal",
			candidate: "https://[::1]:8443/x",
			reference: "https://[::1]:8443",
			want:      true,
		},
		{
			name:      "userinfo ignored",
			candidate: "https://user:pw@example.com",
			reference: "https://example.com",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SameOrigin(tt.candidate, tt.reference)
			if got != tt.want {
				t.Errorf("SameOrigin(%q, %q) = %v, want %v", tt.candidate, tt.reference, got, tt.want)
			}
		})
	}
}

func TestParseOrigin(t *testing.T) {
	origin, err := ParseOrigin("HTTPS://Chat.Example.COM/app")
	if err != nil {
		t.Fatalf("ParseOrigin returned error: %v", err)
	}
	want := entity.Origin{Scheme: "https", Host: "chat.example.com", Port: 443}
	if origin != want {
		t.Errorf("ParseOrigin = %+v, want %+v", origin, want)
	}

	origin, err = ParseOrigin("custom://host")
	if err != nil {
		t.Fatalf("ParseOrigin returned error: %v", err)
	}
	if origin.Port != entity.PortUnresolved {
		t.Errorf("custom scheme port = %d, want unresolved", origin.Port)
	}

	for _, raw := range []string{"", "   ", "https://", "example.com", "mailto:a@b.c"} {
		if _, err := ParseOrigin(raw); err == nil {
			t.Errorf("ParseOrigin(%q) should fail", raw)
		}
	}
}

func TestExtractOrigin_ValidURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "https with port",
			uri:      "https://example.com:8443/path?query=1",
			expected: "https://example.com:8443",
		},
		{
			name:     "https without port",
			uri:      "https://example.com/path",
			expected: "https://example.com",
		},
		{
			name:     "http",
			uri:      "http://localhost:8080/app",
			expected: "http://localhost:8080",
		},
		{
			name:     "mixed case with default port",
			uri:      "HTTPS://EXAMPLE.COM:443/path",
			expected: "https://example.com",
		},
		{
			name:     "ipv6 with explicit port",
			uri:      "https://[::1]:8443/path",
			expected: "https://[::1]:8443",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin, err := ExtractOrigin(tt.uri)
			if err != nil {
				t.Errorf("ExtractOrigin(%q) returned error: %v", tt.uri, err)
				return
			}
			if origin != tt.expected {
				t.Errorf("ExtractOrigin(%q) = %q, want %q", tt.uri, origin, tt.expected)
			}
		})
	}
}

func TestExtractOrigin_InvalidURI(t *testing.T) {
	for _, uri := range []string{"", "example.com", "https://", "//example.com"} {
		if origin, err := ExtractOrigin(uri); err == nil {
			t.Errorf("ExtractOrigin(%q) should return error, got origin: %q", uri, origin)
		}
	}
}

func TestIsDelegableScheme(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com", true},
		{"HTTP://example.com", true},
		{"mailto:someone@example.com", true},
		{"tel:+123", false},
		{"intent://scan/#Intent;scheme=zxing;end", false},
		{"javascript:alert(1)", false},
		{"", false},
		{"://invalid", false},
	}

	for _, tt := range tests {
		if got := IsDelegableScheme(tt.input); got != tt.want {
			t.Errorf("IsDelegableScheme(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsFallbackPage(t *testing.T) {
	const fallback = "file:///usr/share/fluxer/error.html"

	if !IsFallbackPage(fallback, fallback) {
		t.Error("exact fallback should match")
	}
	if !IsFallbackPage(fallback+"#retry", fallback) {
		t.Error("fallback with fragment should match")
	}
	if IsFallbackPage("file:///usr/share/fluxer/other.html", fallback) {
		t.Error("sibling file must not match")
	}
	if IsFallbackPage("", fallback) || IsFallbackPage(fallback, "") {
		t.Error("empty values must not match")
	}
}

func TestIsInternalPage(t *testing.T) {
	if !IsInternalPage("about:blank") || !IsInternalPage("ABOUT:srcdoc") {
		t.Error("about pages should be internal")
	}
	if IsInternalPage("https://about.example.com") || IsInternalPage("about") {
		t.Error("non-about pages should not be internal")
	}
}

func TestReferencesHost(t *testing.T) {
	tests := []struct {
		raw  string
		host string
		want bool
	}{
		{"https://chat.example.com/login", "chat.example.com", true},
		{"https://CHAT.example.com:8443/", "chat.example.com", true},
		{"https://evil.com/?next=chat.example.com", "chat.example.com", false},
		{"https://chat.example.com.evil.com/", "chat.example.com", false},
		{"https://chat.example.com/", "", false},
		{"not a url", "chat.example.com", false},
	}

	for _, tt := range tests {
		if got := ReferencesHost(tt.raw, tt.host); got != tt.want {
			t.Errorf("ReferencesHost(%q, %q) = %v, want %v", tt.raw, tt.host, got, tt.want)
		}
	}
}
