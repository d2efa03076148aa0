package index

const (
	buildRefreshInterval = "10s"
	buildMergeFactor     = 20
	serveRefreshInterval = "1s"
	serveMergeFactor     = 3

	mergeSchedulerThreads = 1
)

// PresetConfig tunes one phase of the index lifetime.
type PresetConfig struct {
	RefreshInterval string `yaml:"refresh_interval" mapstructure:"refresh_interval"`
	MergeFactor     int    `yaml:"merge_factor" mapstructure:"merge_factor" validate:"omitempty,min=2"`
}

// Settings is the settings bundle of a physical index. Zero fields are left
// out of the request, which is what makes a Settings value usable as a patch.
type Settings struct {
	Shards          int
	Replicas        *int
	RefreshInterval string
	MergeFactor     int
	MergeThreads    int
	Analysis        *Analysis
}

// BuildPreset returns settings for the initial bulk load: infrequent
// refreshes and a high merge factor.
func BuildPreset(cfg PresetConfig) Settings {
	return presetSettings(cfg, buildRefreshInterval, buildMergeFactor)
}

// ServePreset returns settings for steady state querying: frequent
// refreshes and a low merge factor.
func ServePreset(cfg PresetConfig) Settings {
	return presetSettings(cfg, serveRefreshInterval, serveMergeFactor)
}

func presetSettings(cfg PresetConfig, refresh string, factor int) Settings {
	if cfg.RefreshInterval != "" {
		refresh = cfg.RefreshInterval
	}
	if cfg.MergeFactor != 0 {
		factor = cfg.MergeFactor
	}
	return Settings{
		RefreshInterval: refresh,
		MergeFactor:     factor,
	}
}

// WithReplicas returns a copy of s with the replica count set.
func (s Settings) WithReplicas(n int) Settings {
	s.Replicas = &n
	return s
}

// Body renders the settings as an engine settings document. Shard count is
// only rendered when forCreate is set, since it is fixed once the index
// exists.
func (s Settings) Body(forCreate bool) map[string]interface{} {
	body := map[string]interface{}{}
	if forCreate && s.Shards > 0 {
		body["number_of_shards"] = s.Shards
	}
	if s.Replicas != nil {
		body["number_of_replicas"] = *s.Replicas
	}
	if s.RefreshInterval != "" {
		body["refresh_interval"] = s.RefreshInterval
	}
	if s.MergeFactor > 0 {
		// the tiered merge policy rejects segments_per_tier below max_merge_at_once
		body["merge.policy.segments_per_tier"] = s.MergeFactor
		body["merge.policy.max_merge_at_once"] = s.MergeFactor
	}
	if s.MergeThreads > 0 {
		body["merge.scheduler.max_thread_count"] = s.MergeThreads
	}
	if s.Analysis != nil {
		body["analysis"] = s.Analysis
	}
	return body
}
