package url

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "unchanged", input: "https://chat.example.com", want: "https://chat.example.com"},
		{name: "trailing slash", input: "https://chat.example.com/", want: "https://chat.example.com"},
		{name: "surrounding whitespace", input: "  https://chat.example.com//  ", want: "https://chat.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeepLinkTarget(t *testing.T) {
	tests := []struct {
		name   string
		server string
		link   string
		scheme string
		want   string
		ok     bool
	}{
		{
			name:   "channel link",
			server: "https://chat.example.com",
			link:   "fluxer://channel/123",
			want:   "https://chat.example.com/#/channel/123",
			ok:     true,
		},
		{
			name:   "server with trailing slash",
			server: "https://chat.example.com/",
			link:   "fluxer://channel/123",
			want:   "https://chat.example.com/#/channel/123",
			ok:     true,
		},
		{
			name:   "triple slash",
			server: "https://chat.example.com",
			link:   "fluxer:///channel/9",
			want:   "https://chat.example.com/#/channel/9",
			ok:     true,
		},
		{
			name:   "opaque form",
			server: "https://chat.example.com",
			link:   "fluxer:channel/5",
			want:   "https://chat.example.com/#/channel/5",
			ok:     true,
		},
		{
			name:   "custom scheme",
			server: "https://chat.example.com",
			link:   "chat://dm/7",
			scheme: "chat",
			want:   "https://chat.example.com/#/dm/7",
			ok:     true,
		},
		{
			name:   "other scheme ignored",
			server: "https://chat.example.com",
			link:   "https://chat.example.com/channel/123",
		},
		{
			name: "no server configured",
			link: "fluxer://channel/123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeepLinkTarget(tt.server, tt.link, tt.scheme)
			if ok != tt.ok || got != tt.want {
				t.Errorf("DeepLinkTarget(%q, %q) = (%q, %v), want (%q, %v)", tt.server, tt.link, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractDomain(t *testing.T) {
	if got := ExtractDomain("https://chat.example.com:8443/x"); got != "chat.example.com" {
		t.Errorf("ExtractDomain = %q", got)
	}
	if got := ExtractDomain(""); got != "" {
		t.Errorf("ExtractDomain(empty) = %q", got)
	}
}
