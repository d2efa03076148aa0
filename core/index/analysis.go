package index

import (
	"sort"
	"strings"
)

const (
	synonymFilter       = "synonym"
	icuNormalizerFilter = "icu_normalizer"
	icuFoldingFilter    = "icu_folding"
)

// base chain every store analyzer starts from
var defaultStoreFilters = []string{"length", "lowercase", "asciifolding", synonymFilter}

// Store is a storefront whose locale drives one analyzer.
type Store struct {
	Code   string `yaml:"code" mapstructure:"code" validate:"required"`
	Locale string `yaml:"locale" mapstructure:"locale" validate:"required"`
}

// AnalyzerConfig is an analyzer as written in the analysis configuration,
// with comma separated filter lists.
type AnalyzerConfig struct {
	Type       string `json:"type" yaml:"type" mapstructure:"type"`
	Tokenizer  string `json:"tokenizer" yaml:"tokenizer" mapstructure:"tokenizer"`
	Filter     string `json:"filter" yaml:"filter" mapstructure:"filter"`
	CharFilter string `json:"char_filter" yaml:"char_filter" mapstructure:"char_filter"`
}

// AnalysisConfig is the base analysis configuration.
type AnalysisConfig struct {
	Analyzer        map[string]AnalyzerConfig         `json:"analyzer" yaml:"analyzer" mapstructure:"analyzer"`
	Filter          map[string]map[string]interface{} `json:"filter" yaml:"filter" mapstructure:"filter"`
	CharFilter      map[string]map[string]interface{} `json:"char_filter" yaml:"char_filter" mapstructure:"char_filter"`
	Tokenizer       map[string]map[string]interface{} `json:"tokenizer" yaml:"tokenizer" mapstructure:"tokenizer"`
	LanguageFilters map[string]string                 `json:"language_filters" yaml:"language_filters" mapstructure:"language_filters"`
}

// Analyzer is an analyzer definition as sent to the engine.
type Analyzer struct {
	Type       string   `json:"type"`
	Tokenizer  string   `json:"tokenizer,omitempty"`
	Filter     []string `json:"filter"`
	CharFilter []string `json:"char_filter,omitempty"`
}

// Analysis is the "analysis" section of the index settings.
type Analysis struct {
	Analyzer   map[string]Analyzer               `json:"analyzer,omitempty"`
	Filter     map[string]map[string]interface{} `json:"filter,omitempty"`
	CharFilter map[string]map[string]interface{} `json:"char_filter,omitempty"`
	Tokenizer  map[string]map[string]interface{} `json:"tokenizer,omitempty"`
}

// AnalysisOptions are the inputs of BuildAnalysis besides the base config.
type AnalysisOptions struct {
	Stores          []Store
	Synonyms        []string
	ExtendedFolding bool
}

// AnalyzerName is the name of the analyzer built for a language code.
func AnalyzerName(languageCode string) string {
	return "analyzer_" + languageCode
}

// BuildAnalysis resolves the analysis settings: configured analyzers plus
// one analyzer per store language. Analyzers only ever reference filters
// declared in the result; unknown names are dropped.
func BuildAnalysis(cfg AnalysisConfig, opts AnalysisOptions) Analysis {
	a := Analysis{
		Analyzer:   map[string]Analyzer{},
		Filter:     map[string]map[string]interface{}{},
		CharFilter: copyDefinitions(cfg.CharFilter),
		Tokenizer:  copyDefinitions(cfg.Tokenizer),
	}

	for name, def := range copyDefinitions(cfg.Filter) {
		if def["type"] == "elision" {
			if articles, ok := def["articles"].(string); ok {
				def["articles"] = splitList(articles)
			}
		}
		a.Filter[name] = def
	}
	if len(opts.Synonyms) > 0 {
		a.Filter[synonymFilter] = map[string]interface{}{
			"type":     "synonym",
			"synonyms": opts.Synonyms,
		}
	}

	for name, an := range cfg.Analyzer {
		a.Analyzer[name] = Analyzer{
			Type:       an.Type,
			Tokenizer:  an.Tokenizer,
			Filter:     a.declaredOnly(splitList(an.Filter)),
			CharFilter: splitList(an.CharFilter),
		}
	}

	for _, lang := range storeLanguages(opts.Stores) {
		filters := append([]string{}, defaultStoreFilters...)
		if extra, ok := cfg.LanguageFilters[lang.Name]; ok {
			filters = append(filters, splitList(extra)...)
		}
		filters = a.declaredOnly(filters)

		if stemmer, ok := lang.Stemmer(); ok {
			if lang.HasStopwords() {
				stop := "stop_" + lang.Code
				a.Filter[stop] = map[string]interface{}{
					"type":      "stop",
					"stopwords": "_" + lang.Name + "_",
				}
				filters = append(filters, stop)
			}
			stem := "snowball_" + lang.Code
			a.Filter[stem] = map[string]interface{}{
				"type":     "stemmer",
				"language": stemmer,
			}
			filters = append(filters, stem)
		}

		a.Analyzer[AnalyzerName(lang.Code)] = Analyzer{
			Type:       "custom",
			Tokenizer:  "standard",
			Filter:     filters,
			CharFilter: []string{"html_strip"},
		}
	}

	if opts.ExtendedFolding {
		a.Filter[icuNormalizerFilter] = map[string]interface{}{"type": "icu_normalizer", "name": "nfkc_cf"}
		a.Filter[icuFoldingFilter] = map[string]interface{}{"type": "icu_folding"}
		for name, an := range a.Analyzer {
			rest := make([]string, 0, len(an.Filter))
			for _, f := range an.Filter {
				if f != icuNormalizerFilter && f != icuFoldingFilter {
					rest = append(rest, f)
				}
			}
			an.Filter = append([]string{icuNormalizerFilter, icuFoldingFilter}, rest...)
			a.Analyzer[name] = an
		}
	}

	return a
}

// declaredOnly keeps the filters present in the declared filter set,
// preserving their order.
func (a Analysis) declaredOnly(filters []string) []string {
	kept := make([]string, 0, len(filters))
	for _, f := range filters {
		if _, ok := a.Filter[f]; ok {
			kept = append(kept, f)
		}
	}
	return kept
}

// storeLanguages returns the distinct languages of the stores ordered by
// language code.
func storeLanguages(stores []Store) []Language {
	seen := map[string]Language{}
	for _, st := range stores {
		lang := LanguageOf(st.Locale)
		if lang.Code == "" {
			continue
		}
		seen[lang.Code] = lang
	}

	langs := make([]Language, 0, len(seen))
	for _, l := range seen {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Code < langs[j].Code })
	return langs
}

func copyDefinitions(in map[string]map[string]interface{}) map[string]map[string]interface{} {
	out := make(map[string]map[string]interface{}, len(in))
	for name, def := range in {
		cp := make(map[string]interface{}, len(def))
		for k, v := range def {
			cp[k] = v
		}
		out[name] = cp
	}
	return out
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
