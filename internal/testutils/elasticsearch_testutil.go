package testutils

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const esImageTag = "7.17.9"

// RunTestES starts a single node elasticsearch in docker and returns a
// client for it. The test is skipped when docker is not reachable.
func RunTestES(t *testing.T) *elasticsearch.Client {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("new test ES: create dockertest pool: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("new test ES: docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "docker.elastic.co/elasticsearch/elasticsearch",
		Tag:        esImageTag,
		Env: []string{
			"discovery.type=single-node",
			"xpack.security.enabled=false",
			"ES_JAVA_OPTS=-Xms512m -Xmx512m",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("new test ES: start resource: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge elasticsearch container: %v", err)
		}
	})

	if err := resource.Expire(300); err != nil {
		t.Fatal(err)
	}

	cli, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{fmt.Sprintf("http://localhost:%s", resource.GetPort("9200/tcp"))},
	})
	if err != nil {
		t.Fatalf("new test ES: create client: %v", err)
	}

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		res, err := cli.Cluster.Health(cli.Cluster.Health.WithWaitForStatus("yellow"))
		if err != nil {
			return err
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("cluster health: %s", res.Status())
		}
		return nil
	}); err != nil {
		t.Fatalf("could not connect to elasticsearch: %v", err)
	}

	return cli
}
