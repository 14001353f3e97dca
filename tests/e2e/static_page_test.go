//go:build e2e

package e2e_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Scenario: the root path serves the embedded demo page.
// ---------------------------------------------------------------------------

func TestE2E_IndexPage_Served(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.Client.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"),
		"unexpected content type: %s", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// The page drives the API endpoints directly.
	assert.Contains(t, string(body), "/elements")
	assert.Contains(t, string(body), "/events")
}

// TestE2E_UnknownPath_NotFound verifies the root pattern does not swallow
// arbitrary paths.
func TestE2E_UnknownPath_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.Client.Get(ts.URL + "/no-such-page")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestE2E_WrongMethod_NotAllowed verifies method-scoped routing rejects
// mismatched verbs.
func TestE2E_WrongMethod_NotAllowed(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.Client.Get(ts.URL + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = ts.Client.Post(ts.URL+"/elements", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
