package scorebridge_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scorebridge "github.com/opensecurity/scorebridge"
)

// recordedRequest captures what the server observed for contract assertions.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
	Header http.Header
}

func newTestServer(t *testing.T, status int, payload interface{}) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var recorded []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded = append(recorded, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body,
			Header: r.Header.Clone(),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)
	return server, &recorded
}

func newServerClient(t *testing.T, server *httptest.Server, config *scorebridge.Config) *scorebridge.Client {
	t.Helper()
	client := scorebridge.New(config)
	client.SetServer(server.URL, nil)
	return client
}

func TestGetPortfoliosIssuesOneGET(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.PortfolioList{
		Entries: []scorebridge.Portfolio{{ID: "pf-1", Name: "Vendors"}},
		Total:   1,
	})
	client := newServerClient(t, server, nil)
	require.NoError(t, client.SetAuth("test-key"))

	portfolios, err := client.GetPortfolios(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, portfolios.Total)
	assert.Equal(t, "Vendors", portfolios.Entries[0].Name)

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/portfolios", req.Path)
	assert.Empty(t, req.Body)
	assert.Equal(t, "Token test-key", req.Header.Get("Authorization"))
}

func TestCreatePortfolioSendsJSONBody(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.Portfolio{ID: "pf-9", Name: "Vendors"})
	client := newServerClient(t, server, nil)

	created, err := client.CreatePortfolio(context.Background(), &scorebridge.PortfolioRequest{Name: "Vendors"})
	require.NoError(t, err)
	assert.Equal(t, "pf-9", created.ID)

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/portfolios", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, "Vendors", sent["name"])
}

func TestIssueFindingsPathAndNoBody(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.IssueFindingList{Total: 2})
	client := newServerClient(t, server, nil)

	findings, err := client.GetCompanyIssueFindings(context.Background(), "example.com", "malware_detected")
	require.NoError(t, err)
	assert.Equal(t, 2, findings.Total)

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/companies/example.com/issues/malware_detected", req.Path)
	assert.Empty(t, req.Body)
}

func TestSetServerLastWriteWins(t *testing.T) {
	serverA, recordedA := newTestServer(t, 200, scorebridge.PortfolioList{})
	serverB, recordedB := newTestServer(t, 200, scorebridge.PortfolioList{})

	client := scorebridge.New(nil)
	client.SetServer(serverA.URL, nil)
	client.SetServer(serverB.URL, nil)

	_, err := client.GetPortfolios(context.Background())
	require.NoError(t, err)
	assert.Empty(t, *recordedA)
	assert.Len(t, *recordedB, 1)
}

func TestSetServerSubstitutesVariables(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.PortfolioList{})
	client := scorebridge.New(nil)
	// Substitute the whole host through a variable to exercise the template.
	client.SetServer("{base}/", map[string]string{"base": server.URL})

	_, err := client.GetPortfolios(context.Background())
	require.NoError(t, err)
	require.Len(t, *recorded, 1)
	assert.Equal(t, "/portfolios", (*recorded)[0].Path)
}

func TestSetAuthLastWriteWins(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.PortfolioList{})
	client := newServerClient(t, server, nil)
	require.NoError(t, client.SetAuth("first-key"))
	require.NoError(t, client.SetAuth("second-key"))

	_, err := client.GetPortfolios(context.Background())
	require.NoError(t, err)
	require.Len(t, *recorded, 1)
	assert.Equal(t, "Token second-key", (*recorded)[0].Header.Get("Authorization"))
}

func TestSetAuthBasicWithTwoCredentials(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.User{Username: "alex"})
	client := newServerClient(t, server, nil)
	require.NoError(t, client.SetAuth("user", "pass"))

	_, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)
	require.Len(t, *recorded, 1)
	// base64("user:pass")
	assert.Equal(t, "Basic dXNlcjpwYXNz", (*recorded)[0].Header.Get("Authorization"))
}

func TestSetAuthBearerScheme(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.User{})
	client := newServerClient(t, server, &scorebridge.Config{AuthScheme: scorebridge.AuthSchemeBearer})
	require.NoError(t, client.SetAuth("jwt-token"))

	_, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)
	require.Len(t, *recorded, 1)
	assert.Equal(t, "Bearer jwt-token", (*recorded)[0].Header.Get("Authorization"))
}

func TestSetAuthRejectsWrongArity(t *testing.T) {
	client := scorebridge.New(nil)
	assert.Error(t, client.SetAuth())
	assert.Error(t, client.SetAuth("a", "b", "c"))
}

func TestMissingRequiredBodyIsRuntimeError(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.Portfolio{})
	client := newServerClient(t, server, nil)

	_, err := client.Call(context.Background(), "createPortfolio", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request body is required")
	assert.Empty(t, *recorded, "no request must be issued without a required body")
}

func TestBodyOnBodylessEndpointIsRejected(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.PortfolioList{})
	client := newServerClient(t, server, nil)

	_, err := client.Call(context.Background(), "getPortfolios", map[string]string{"x": "y"}, nil)
	require.Error(t, err)
	assert.Empty(t, *recorded)
}

func TestMissingRequiredMetadataIsRuntimeError(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.Scorecard{})
	client := newServerClient(t, server, nil)

	_, err := client.Call(context.Background(), "getCompanyScorecard", nil, nil)
	require.Error(t, err)
	assert.Empty(t, *recorded)
}

func TestGenericCallMatchesFacade(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.IssueFindingList{Total: 1})
	client := newServerClient(t, server, nil)

	resp, err := client.Call(context.Background(), "getCompanyIssueFindings", nil, scorebridge.Metadata{
		"scorecard_identifier": "example.com",
		"type":                 "malware_detected",
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var findings scorebridge.IssueFindingList
	require.NoError(t, resp.Decode(&findings))
	assert.Equal(t, 1, findings.Total)
	assert.Equal(t, "/companies/example.com/issues/malware_detected", (*recorded)[0].Path)
}

func TestAPIErrorSurfacesEnvelope(t *testing.T) {
	server, _ := newTestServer(t, 401, map[string]interface{}{
		"error": map[string]string{"message": "invalid token", "code": "unauthorized"},
	})
	client := newServerClient(t, server, nil)

	_, err := client.GetPortfolios(context.Background())
	require.Error(t, err)
	apiErr, ok := scorebridge.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, "invalid token", apiErr.Message)
	assert.Equal(t, "unauthorized", apiErr.Code)
}

func TestRateLimitInfoObservedFromHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "100")
		w.Header().Set("X-RateLimit-Remaining", "99")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entries":[],"total":0}`))
	}))
	t.Cleanup(server.Close)

	client := newServerClient(t, server, &scorebridge.Config{UseAPIRateLimits: true})
	_, err := client.GetPortfolios(context.Background())
	require.NoError(t, err)

	info := client.GetRateLimitInfo("portfolios")
	require.NotNil(t, info)
	assert.Equal(t, 100, *info.MaxRequests)
	assert.Equal(t, 99, *info.RemainingRequests)
}

func TestUserAgentAttached(t *testing.T) {
	server, recorded := newTestServer(t, 200, scorebridge.PortfolioList{})
	client := newServerClient(t, server, &scorebridge.Config{UserAgent: "acme-integration/2.1"})

	_, err := client.GetPortfolios(context.Background())
	require.NoError(t, err)
	require.Len(t, *recorded, 1)
	ua := (*recorded)[0].Header.Get("User-Agent")
	assert.Contains(t, ua, "scorebridge-go")
	assert.Contains(t, ua, "acme-integration/2.1")
}
