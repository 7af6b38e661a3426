package vectorstore

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

// TestNewQdrantStore_URLParsing tests URL parsing logic without creating a real client.
func TestNewQdrantStore_URLParsing(t *testing.T) {
	tests := []struct {
		name     string
		urlStr   string
		wantErr  bool
		wantHost string
		wantPort int
	}{
		{
			name:     "valid URL",
			urlStr:   "http://localhost:6333",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334, // gRPC port is HTTP port + 1
		},
		{
			name:     "URL with custom port",
			urlStr:   "http://localhost:9000",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 9001,
		},
		{
			name:    "invalid URL",
			urlStr:  "://invalid",
			wantErr: true,
		},
		{
			name:     "URL without port",
			urlStr:   "http://localhost",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334,
		},
		{
			name:     "URL without hostname",
			urlStr:   "http://:6333",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedURL, err := url.Parse(tt.urlStr)
			if tt.wantErr {
				if err == nil {
					t.Error("expected URL parse error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected URL parse error: %v", err)
			}

			host := parsedURL.Hostname()
			if host == "" {
				host = "localhost"
			}
			port := 6334
			if parsedURL.Port() != "" {
				if httpPort, err := strconv.Atoi(parsedURL.Port()); err == nil {
					port = httpPort + 1
				}
			}

			if host != tt.wantHost {
				t.Errorf("host = %q, want %q", host, tt.wantHost)
			}
			if port != tt.wantPort {
				t.Errorf("port = %d, want %d", port, tt.wantPort)
			}
		})
	}
}

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name  string
		value *qdrant.Value
		want  any
	}{
		{
			name:  "string value",
			value: qdrant.NewValueString("SEC Filing: 10-Q"),
			want:  "SEC Filing: 10-Q",
		},
		{
			name:  "bool value",
			value: qdrant.NewValueBool(true),
			want:  true,
		},
		{
			name:  "integer value",
			value: qdrant.NewValueInt(42),
			want:  int64(42),
		},
		{
			name:  "double value",
			value: qdrant.NewValueDouble(0.95),
			want:  0.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertValue(tt.value)
			if got != tt.want {
				t.Errorf("convertValue() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}
