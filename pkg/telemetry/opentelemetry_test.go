package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
)

func TestProvidersShutdown(t *testing.T) {
	var order []string
	p := &providers{logger: log.NewNoop()}
	p.add(func(context.Context) error {
		order = append(order, "meter")
		return nil
	})
	p.add(func(context.Context) error {
		order = append(order, "tracer")
		return errors.New("collector unreachable")
	})

	p.shutdown()

	assert.Equal(t, []string{"tracer", "meter"}, order)
}

func TestInitOTLPDisabled(t *testing.T) {
	shutdown, err := initOTLP(context.Background(), Config{}, log.NewNoop())
	assert.NoError(t, err)
	assert.NotPanics(t, shutdown)
}
