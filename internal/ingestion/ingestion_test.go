package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPostingText_UsesJobSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Site nav</nav>
		<div class="job-description"><p>We need a Go engineer.</p><p>Remote friendly.</p></div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "We need a Go engineer.")
	assert.Contains(t, text, "Remote friendly.")
	assert.NotContains(t, text, "Site nav")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractPostingText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text</p><script>evil()</script></body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Plain posting text")
	assert.NotContains(t, text, "evil()")
}

func TestFetchJobDescription_HappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Python and SQL engineer wanted</main></body></html>`))
	}))
	defer srv.Close()

	text, err := FetchJobDescription(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Python and SQL engineer wanted")
}

func TestFetchJobDescription_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchJobDescription(context.Background(), srv.URL)
	require.Error(t, err)

	var ingErr *Error
	assert.ErrorAs(t, err, &ingErr)
}

func TestFetchJobDescription_InvalidURL(t *testing.T) {
	_, err := FetchJobDescription(context.Background(), "not a url")
	assert.Error(t, err)
}
