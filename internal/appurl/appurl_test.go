package appurl

import "testing"

func TestBaseURL(t *testing.T) {
	t.Setenv("APP_URL", "https://cardapio.example.com")
	if got := BaseURL(); got != "https://cardapio.example.com" {
		t.Fatalf("BaseURL() = %q", got)
	}

	t.Setenv("APP_URL", "ftp://nope")
	if got := BaseURL(); got != devFallback {
		t.Fatalf("invalid scheme must fall back, got %q", got)
	}

	t.Setenv("APP_URL", "")
	if got := BaseURL(); got != devFallback {
		t.Fatalf("empty env must fall back, got %q", got)
	}
}

func TestIsValidAppURL(t *testing.T) {
	t.Setenv("APP_URL", "https://cardapio.example.com")

	cases := []struct {
		url  string
		want bool
	}{
		{"https://cardapio.example.com/doce-mel", true},
		{"https://admin.cardapio.example.com/x", true},
		{"http://cardapio.example.com", true},
		{"https://evil.example.org", false},
		{"https://cardapio.example.com.evil.org", false},
		{"javascript:alert(1)", false},
		{"not a url at all://", false},
	}
	for _, tc := range cases {
		if got := IsValidAppURL(tc.url); got != tc.want {
			t.Errorf("IsValidAppURL(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestIsValidAppURL_Localhost(t *testing.T) {
	t.Setenv("APP_URL", "http://localhost:5173")
	if !IsValidAppURL("http://localhost:3000/admin") {
		t.Fatal("localhost must match localhost on any port")
	}
	if IsValidAppURL("http://127.0.0.1:3000/admin") {
		t.Fatal("127.0.0.1 is not the localhost hostname")
	}
}
