package httpclient

import (
	"net/http"
	"testing"
)

func TestAuthApply(t *testing.T) {
	tests := []struct {
		name string
		auth *AuthConfig
		want string
	}{
		{"bearer", BearerAuth("my-token"), "Bearer my-token"},
		{"empty bearer", BearerAuth(""), ""},
		{"none", NoAuth(), ""},
		{"nil", nil, ""},
		{"custom", CustomAuth(func(r *http.Request) { r.Header.Set("Authorization", "Custom x") }), "Custom x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "http://example.com", http.NoBody)
			tt.auth.apply(req)
			if got := req.Header.Get("Authorization"); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
