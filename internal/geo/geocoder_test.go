package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"moving-estimate-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocoderServer(t *testing.T, status int, body string, gotQuery *string, gotUA *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.Query().Get("q")
		}
		if gotUA != nil {
			*gotUA = r.Header.Get("User-Agent")
		}
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeocoder_Geocode(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expected    models.Coordinate
		expectError bool
	}{
		{
			name:     "well-formed payload",
			status:   http.StatusOK,
			body:     `<?xml version="1.0" encoding="UTF-8"?><result><coordinate><lat>35.0</lat><lon>139.0</lon></coordinate></result>`,
			expected: models.Coordinate{Lon: "139.0", Lat: "35.0"},
		},
		{
			name:     "first coordinate wins",
			status:   http.StatusOK,
			body:     `<result><coordinate><lat>35.0</lat><lon>139.0</lon></coordinate><coordinate><lat>1</lat><lon>2</lon></coordinate></result>`,
			expected: models.Coordinate{Lon: "139.0", Lat: "35.0"},
		},
		{
			name:     "lng element accepted",
			status:   http.StatusOK,
			body:     `<result><address>東京都千代田区</address><coordinate><lat>35.694003</lat><lng>139.753595</lng></coordinate></result>`,
			expected: models.Coordinate{Lon: "139.753595", Lat: "35.694003"},
		},
		{
			name:        "no coordinate element",
			status:      http.StatusOK,
			body:        `<result><error>002. Address not found</error></result>`,
			expectError: true,
		},
		{
			name:        "coordinate without lat",
			status:      http.StatusOK,
			body:        `<result><coordinate><lon>139.0</lon></coordinate></result>`,
			expectError: true,
		},
		{
			name:        "non numeric latitude",
			status:      http.StatusOK,
			body:        `<result><coordinate><lat>north</lat><lon>139.0</lon></coordinate></result>`,
			expectError: true,
		},
		{
			name:        "malformed xml",
			status:      http.StatusOK,
			body:        `<result><coordinate><lat>35.0</lat>`,
			expectError: true,
		},
		{
			name:        "service error status",
			status:      http.StatusServiceUnavailable,
			body:        `rate limited`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newGeocoderServer(t, tt.status, tt.body, nil, nil)
			g, err := NewGeocoder(srv.URL, "test-agent", srv.Client())
			require.NoError(t, err)

			result, err := g.Geocode(context.Background(), "東京都千代田区丸の内1-1")

			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, models.ErrGeocoding)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestGeocoder_Geocode_ReturnsLongitudeFirst(t *testing.T) {
	srv := newGeocoderServer(t, http.StatusOK, `<result><coordinate><lat>35.0</lat><lon>139.0</lon></coordinate></result>`, nil, nil)
	g, err := NewGeocoder(srv.URL, "", srv.Client())
	require.NoError(t, err)

	result, err := g.Geocode(context.Background(), "大阪府大阪市北区")
	require.NoError(t, err)
	assert.Equal(t, []string{"139.0", "35.0"}, result.Pair())
}

func TestGeocoder_Geocode_SendsQueryAndUserAgent(t *testing.T) {
	var gotQuery, gotUA string
	srv := newGeocoderServer(t, http.StatusOK, `<result><coordinate><lat>35.0</lat><lon>139.0</lon></coordinate></result>`, &gotQuery, &gotUA)
	g, err := NewGeocoder(srv.URL, "estimate-test/1.0", srv.Client())
	require.NoError(t, err)

	_, err = g.Geocode(context.Background(), "東京都港区赤坂1丁目 & more")
	require.NoError(t, err)
	assert.Equal(t, "東京都港区赤坂1丁目 & more", gotQuery)
	assert.Equal(t, "estimate-test/1.0", gotUA)
}

func TestGeocoder_Geocode_EmptyAddress(t *testing.T) {
	g, err := NewGeocoder("http://127.0.0.1:1", "", nil)
	require.NoError(t, err)

	_, err = g.Geocode(context.Background(), "  ")
	assert.ErrorIs(t, err, models.ErrGeocoding)
}

func TestGeocoder_Geocode_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	g, err := NewGeocoder(url, "", nil)
	require.NoError(t, err)

	_, err = g.Geocode(context.Background(), "東京都")
	assert.ErrorIs(t, err, models.ErrGeocoding)
}

func TestNewGeocoder_EmptyURL(t *testing.T) {
	_, err := NewGeocoder("", "", nil)
	assert.Error(t, err)
}
