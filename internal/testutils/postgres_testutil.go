package testutils

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/goto/catalogindex/internal/store/postgres"
	"github.com/goto/salt/log"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	pgImageTag  = "13-alpine"
	pgUsername  = "test_user"
	pgPassword  = "test_pass"
	pgName      = "test_db"
	pgMaxWait   = time.Minute
	pgExpiresIn = 300
)

// NewTestPG starts postgres in docker, migrates it and returns a client
// that is closed, with the container, when the test ends. The test is
// skipped when docker is not reachable.
func NewTestPG(t *testing.T, logger log.Logger) (*postgres.Client, error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("new test PG: create dockertest pool: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("new test PG: docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        pgImageTag,
		Env: []string{
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_USER=" + pgUsername,
			"POSTGRES_DB=" + pgName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("new test PG: start resource: %w", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge postgres container: %v", err)
		}
	})

	if err := resource.Expire(pgExpiresIn); err != nil {
		return nil, err
	}

	port, err := strconv.Atoi(resource.GetPort("5432/tcp"))
	if err != nil {
		return nil, fmt.Errorf("new test PG: parse published port: %w", err)
	}
	cfg := postgres.Config{
		Host:         "localhost",
		Port:         port,
		Name:         pgName,
		User:         pgUsername,
		Password:     pgPassword,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}

	// the server restarts once while initialising, keep dialing until
	// the client can ping it
	var client *postgres.Client
	pool.MaxWait = pgMaxWait
	if err := pool.Retry(func() (err error) {
		client, err = postgres.NewClient(context.Background(), cfg)
		return err
	}); err != nil {
		return nil, fmt.Errorf("new test PG: connect: %w", err)
	}
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("close postgres client: %v", err)
		}
	})

	version, err := client.Migrate()
	if err != nil {
		return nil, fmt.Errorf("new test PG: migrate: %w", err)
	}
	logger.Debug("test postgres ready", "port", port, "schema_version", version)

	return client, nil
}
