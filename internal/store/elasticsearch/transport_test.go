package elasticsearch_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v7"
	store "github.com/goto/catalogindex/internal/store/elasticsearch"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/require"
)

const infoResponse = `{"cluster_name":"catalog-test","version":{"number":"7.17.9"}}`

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   string
}

type reply struct {
	Status int
	Body   string
}

// fakeTransport answers elasticsearch requests from a handler and records
// them. The product check issued by the client is answered implicitly.
type fakeTransport struct {
	requests []recordedRequest
	handler  func(req recordedRequest) reply
	err      error
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	if req.Method == http.MethodGet && req.URL.Path == "/" {
		return newResponse(req, reply{Status: http.StatusOK, Body: infoResponse}), nil
	}

	rec := recordedRequest{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  map[string]string{},
	}
	for k := range req.URL.Query() {
		rec.Query[k] = req.URL.Query().Get(k)
	}
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		rec.Body = string(b)
	}
	f.requests = append(f.requests, rec)

	r := reply{Status: http.StatusOK, Body: `{"acknowledged":true}`}
	if f.handler != nil {
		r = f.handler(rec)
	}
	return newResponse(req, r), nil
}

func newResponse(req *http.Request, r reply) *http.Response {
	return &http.Response{
		StatusCode: r.Status,
		Status:     http.StatusText(r.Status),
		Header: http.Header{
			"Content-Type":      []string{"application/json"},
			"X-Elastic-Product": []string{"Elasticsearch"},
		},
		Body:    io.NopCloser(strings.NewReader(r.Body)),
		Request: req,
	}
}

func newTestClient(t *testing.T, transport *fakeTransport) *store.Client {
	t.Helper()

	cli, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://es.test:9200"},
		Transport: transport,
	})
	require.NoError(t, err)

	client, err := store.NewClient(log.NewNoop(), store.Config{}, store.WithClient(cli))
	require.NoError(t, err)
	return client
}
