package testhelpers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockContentsServerConfig configures the behavior of a mock GitHub contents API server
type MockContentsServerConfig struct {
	// Owner and Repo locate the repository the server answers for
	Owner string
	Repo  string
	// Path is the file path the server serves
	Path string
	// Content is the file body returned for Path
	Content string
	// StatusCode overrides the response status. Zero means 200.
	StatusCode int
	// Intercept, when set, sees every request before it is answered.
	// Returning false suppresses the canned response.
	Intercept func(w http.ResponseWriter, r *http.Request) bool
}

// NewMockContentsServerConfig creates a mock server config with defaults
// matching a small public roster repository
func NewMockContentsServerConfig(content string) *MockContentsServerConfig {
	return &MockContentsServerConfig{
		Owner:   "history",
		Repo:    "figures",
		Path:    "data/figures.txt",
		Content: content,
	}
}

// RepoSpec returns the owner/name spec for the mocked repository.
func (c *MockContentsServerConfig) RepoSpec() string {
	return c.Owner + "/" + c.Repo
}

// NewMockContentsServer creates an httptest server that mocks the GitHub
// repository contents endpoint for a single file
func NewMockContentsServer(t *testing.T, config *MockContentsServerConfig) *httptest.Server {
	t.Helper()

	if config == nil {
		config = NewMockContentsServerConfig("")
	}

	mux := http.NewServeMux()
	endpoint := "/repos/" + config.Owner + "/" + config.Repo + "/contents/" + config.Path
	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		if config.Intercept != nil && !config.Intercept(w, r) {
			return
		}
		if config.StatusCode != 0 && config.StatusCode != http.StatusOK {
			http.Error(w, http.StatusText(config.StatusCode), config.StatusCode)
			return
		}
		content := &github.RepositoryContent{
			Type:     github.String("file"),
			Encoding: github.String("base64"),
			Name:     github.String(path.Base(config.Path)),
			Path:     github.String(config.Path),
			Content:  github.String(base64.StdEncoding.EncodeToString([]byte(config.Content))),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(content)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}
