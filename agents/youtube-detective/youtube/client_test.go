package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"video-detective/shared/config"

	"google.golang.org/api/option"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), &config.YouTubeConfig{APIKey: "test-key"},
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestFetchVideo(t *testing.T) {
	var gotPath, gotID string
	var gotParts []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotParts = r.URL.Query()["part"]
		gotID = r.URL.Query().Get("id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [{
				"id": "dQw4w9WgXcQ",
				"snippet": {"title": "Sample", "channelTitle": "Chan", "description": "desc"},
				"contentDetails": {"duration": "PT3M33S"},
				"statistics": {"viewCount": "1000000"}
			}]
		}`))
	})

	video, err := client.FetchVideo(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("FetchVideo() error = %v", err)
	}

	if !strings.HasSuffix(gotPath, "/videos") {
		t.Errorf("request path = %s, want suffix /videos", gotPath)
	}
	if want := []string{"snippet", "contentDetails", "statistics"}; !slices.Equal(gotParts, want) {
		t.Errorf("part = %q, want %q", gotParts, want)
	}
	if gotID != "dQw4w9WgXcQ" {
		t.Errorf("id = %q", gotID)
	}

	if video.ID != "dQw4w9WgXcQ" || video.Title != "Sample" || video.ChannelTitle != "Chan" || video.Description != "desc" {
		t.Errorf("unexpected metadata: %+v", video)
	}
	if video.Duration != "PT3M33S" {
		t.Errorf("Duration = %s, want PT3M33S", video.Duration)
	}
	if video.ViewCount != 1000000 {
		t.Errorf("ViewCount = %d, want 1000000", video.ViewCount)
	}
}

func TestFetchVideoDefaults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [{"id": "abcdefghijk", "snippet": {"title": "Bare"}}]}`))
	})

	video, err := client.FetchVideo(context.Background(), "abcdefghijk")
	if err != nil {
		t.Fatalf("FetchVideo() error = %v", err)
	}

	if video.Description != "No description available" {
		t.Errorf("Description = %q", video.Description)
	}
	if video.ChannelTitle != "Unknown" {
		t.Errorf("ChannelTitle = %q", video.ChannelTitle)
	}
	if video.Duration != "PT0S" {
		t.Errorf("Duration = %q", video.Duration)
	}
	if video.ViewCount != 0 {
		t.Errorf("ViewCount = %d", video.ViewCount)
	}
}

func TestFetchVideoNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": []}`))
	})

	_, err := client.FetchVideo(context.Background(), "abcdefghijk")
	if !errors.Is(err, ErrVideoNotFound) {
		t.Errorf("error = %v, want ErrVideoNotFound", err)
	}
}

func TestFetchVideoMissingTitle(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [{"id": "abcdefghijk", "statistics": {"viewCount": "5"}}]}`))
	})

	_, err := client.FetchVideo(context.Background(), "abcdefghijk")
	if !errors.Is(err, ErrMalformedVideo) {
		t.Errorf("error = %v, want ErrMalformedVideo", err)
	}
}

func TestFetchVideoServiceError(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "quotaExceeded"}}`))
	})

	_, err := client.FetchVideo(context.Background(), "abcdefghijk")
	if err == nil {
		t.Fatal("Expected error for 403 response")
	}
	if errors.Is(err, ErrVideoNotFound) {
		t.Error("service failure must not be reported as not found")
	}
	if !strings.Contains(err.Error(), "quotaExceeded") {
		t.Errorf("error %q does not carry the service message", err)
	}
	if calls != 1 {
		t.Errorf("expected a single request, got %d", calls)
	}
}
