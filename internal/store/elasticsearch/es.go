package elasticsearch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/goto/catalogindex/core/index"
	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/integrations/nrelasticsearch-v7"
)

// documents carry their type in a field, which needs single type indices
const minServerVersion = ">= 7.0.0, < 8.0.0"

type Config struct {
	Brokers        string        `yaml:"brokers" mapstructure:"brokers" default:"http://localhost:9200"`
	Username       string        `yaml:"username" mapstructure:"username"`
	Password       string        `yaml:"password" mapstructure:"password"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout" default:"60s"`
}

// extract error reason from an elasticsearch response
// returns the raw message in case it fails
func errorReasonFromResponse(res *esapi.Response) string {
	var (
		response struct {
			Error struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"error"`
		}
		raw bytes.Buffer
	)
	reader := io.TeeReader(res.Body, &raw)
	if err := json.NewDecoder(reader).Decode(&response); err != nil || response.Error.Reason == "" {
		return fmt.Sprintf("%s: raw response = %s", res.Status(), raw.String())
	}
	if response.Error.Type != "" {
		return response.Error.Type + ": " + response.Error.Reason
	}
	return response.Error.Reason
}

// helper for decorating unsuccessful invocations of the es REST API
func elasticSearchError(op string, err error) error {
	return index.TransportError{Op: op, Err: err}
}

// responseError turns a non 2xx response into an error
func responseError(op string, res *esapi.Response) error {
	return fmt.Errorf("%s: elasticsearch responded with %s", op, errorReasonFromResponse(res))
}

// Client implements index.Engine on top of the elasticsearch REST API.
type Client struct {
	client         *elasticsearch.Client
	logger         log.Logger
	requestTimeout time.Duration
}

var _ index.Engine = (*Client)(nil)

func NewClient(logger log.Logger, config Config, opts ...ClientOption) (*Client, error) {
	c := &Client{
		logger:         logger,
		requestTimeout: config.RequestTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client != nil {
		return c, nil
	}

	brokers := strings.Split(config.Brokers, ",")
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: brokers,
		Username:  config.Username,
		Password:  config.Password,
		Transport: nrelasticsearch.NewRoundTripper(nil),
	})
	if err != nil {
		return nil, err
	}
	c.client = esClient

	return c, nil
}

// Init checks the cluster is reachable and runs a supported version.
func (c *Client) Init() (string, error) {
	res, err := c.client.Info()
	if err != nil {
		return "", elasticSearchError("info", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return "", errors.New(res.Status())
	}
	var info = struct {
		ClusterName string `json:"cluster_name"`
		Version     struct {
			Number string `json:"number"`
		} `json:"version"`
	}{}

	if err = json.NewDecoder(res.Body).Decode(&info); err != nil {
		return "", err
	}

	if err := checkVersion(info.Version.Number); err != nil {
		return "", err
	}

	return fmt.Sprintf("%q (server version %s)", info.ClusterName, info.Version.Number), nil
}

func checkVersion(number string) error {
	v, err := semver.NewVersion(number)
	if err != nil {
		return fmt.Errorf("parse server version %q: %w", number, err)
	}
	constraint, err := semver.NewConstraint(minServerVersion)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("unsupported elasticsearch version %s, want %s", number, minServerVersion)
	}
	return nil
}

func encode(v interface{}) (io.Reader, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return &buf, nil
}

func drain(res *esapi.Response) {
	_, _ = io.Copy(io.Discard, res.Body)
	res.Body.Close()
}

// do runs a request and hands a successful response to decode.
func (c *Client) do(op string, req func() (*esapi.Response, error), decode func(*esapi.Response) error) error {
	res, err := req()
	if err != nil {
		return elasticSearchError(op, err)
	}
	defer drain(res)
	if res.IsError() {
		return responseError(op, res)
	}
	if decode != nil {
		return decode(res)
	}
	return nil
}
