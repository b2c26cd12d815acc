package ping

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"portfolio-enhancer-api/core/interfaces"
)

// mockResponse implements interfaces.Response
type mockResponse struct{}

func (m *mockResponse) StatusCode() int          { return 200 }
func (m *mockResponse) Body() io.ReadCloser      { return io.NopCloser(bytes.NewReader(nil)) }
func (m *mockResponse) Header(key string) string { return "" }

// mockHTTPClient captures the requested URL and signals completion
type mockHTTPClient struct {
	requested chan string
}

func (m *mockHTTPClient) Get(_ context.Context, url string) (interfaces.Response, error) {
	m.requested <- url
	return &mockResponse{}, nil
}

func (m *mockHTTPClient) Post(_ context.Context, url string, _ io.Reader) (interfaces.Response, error) {
	return &mockResponse{}, nil
}

func TestNotify_EscapesSitemapURL(t *testing.T) {
	client := &mockHTTPClient{requested: make(chan string, 1)}
	notifier := NewNotifier(client, nil)

	notifier.Notify(context.Background(), "https://example.com/sitemap.xml")

	select {
	case url := <-client.requested:
		want := GooglePingEndpoint + "?sitemap=https%3A%2F%2Fexample.com%2Fsitemap.xml"
		if url != want {
			t.Errorf("pinged %q, want %q", url, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestNotify_CustomEndpoint(t *testing.T) {
	client := &mockHTTPClient{requested: make(chan string, 1)}
	notifier := NewNotifierWithEndpoint(client, nil, "https://ping.example.org/submit")

	notifier.Notify(context.Background(), "https://site.test/sitemap.xml")

	select {
	case url := <-client.requested:
		want := "https://ping.example.org/submit?sitemap=https%3A%2F%2Fsite.test%2Fsitemap.xml"
		if url != want {
			t.Errorf("pinged %q, want %q", url, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestNotify_NilClientDoesNotPanic(t *testing.T) {
	notifier := NewNotifier(nil, nil)

	// Absent capability means silent skip, never a panic.
	notifier.Notify(context.Background(), "https://example.com/sitemap.xml")
}

func TestNotify_ReturnsImmediately(t *testing.T) {
	// An unbuffered channel would block the send; Notify must still
	// return without waiting on delivery.
	client := &mockHTTPClient{requested: make(chan string)}
	notifier := NewNotifier(client, nil)

	done := make(chan struct{})
	go func() {
		notifier.Notify(context.Background(), "https://example.com/sitemap.xml")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked the caller")
	}

	// Drain the in-flight request.
	<-client.requested
}
