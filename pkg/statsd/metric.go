package statsd

import (
	"sort"
	"strings"

	"github.com/goto/salt/log"
)

// Metric is a statsd metric being tagged. All methods are safe on a nil
// Metric, which is what a disabled Reporter hands out.
type Metric struct {
	name   string
	rate   float64
	influx bool
	tags   map[string]string
	logger log.Logger
	send   func(name string, tags []string, rate float64) error
}

// Success tags the metric as successful.
func (m *Metric) Success() *Metric {
	return m.Tag("success", "true")
}

// Failure tags the metric as failed.
func (m *Metric) Failure() *Metric {
	return m.Tag("success", "false")
}

// Status tags the metric by the outcome of err.
func (m *Metric) Status(err error) *Metric {
	if err != nil {
		return m.Failure()
	}
	return m.Success()
}

// Tag adds a tag to the metric.
func (m *Metric) Tag(key, val string) *Metric {
	if m == nil {
		return nil
	}
	if m.tags == nil {
		m.tags = map[string]string{}
	}
	m.tags[key] = val
	return m
}

// Publish sends the metric with its tags. Intended to be used with defer.
func (m *Metric) Publish() {
	if m == nil {
		return
	}

	name, tags := m.name, m.datadogTags()
	if m.influx {
		name, tags = m.influxName(), nil
	}
	if err := m.send(name, tags, m.rate); err != nil {
		m.logger.Warn("failed to publish metric", "name", m.name, "err", err)
	}
}

func (m *Metric) keys() []string {
	keys := make([]string, 0, len(m.tags))
	for k := range m.tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Metric) datadogTags() []string {
	tags := make([]string, 0, len(m.tags))
	for _, k := range m.keys() {
		tags = append(tags, k+":"+m.tags[k])
	}
	return tags
}

func (m *Metric) influxName() string {
	var s strings.Builder
	s.WriteString(m.name)
	for _, k := range m.keys() {
		s.WriteString("," + k + "=" + m.tags[k])
	}
	return s.String()
}
