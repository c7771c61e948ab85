package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that call
// external capability services.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "concept-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ServiceConfig holds shared settings for an external capability
// service endpoint.
type ServiceConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the authentication key for the service, if it
	// requires one.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	ServiceConfig `yaml:",inline"`

	// CorpusDir is the directory of cleaned text files to process.
	CorpusDir string `json:"corpus_dir" yaml:"corpus_dir"`

	// MapsDir is the output directory for concept map JSON files.
	MapsDir string `json:"maps_dir" yaml:"maps_dir"`

	// ChunkSize bounds the number of characters sent to the analyzer
	// per request (default 100000). Chunk boundaries are parsing-unit
	// splits only, never semantic boundaries.
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`

	// MaxPhraseWords bounds noun-phrase concept length in words
	// (default 4).
	MaxPhraseWords int `json:"max_phrase_words" yaml:"max_phrase_words"`
}

// SynthesisConfig holds settings for the question synthesis stage.
type SynthesisConfig struct {
	ServiceConfig `yaml:",inline"`

	// MapsDir is the directory of concept map JSON files to read.
	MapsDir string `json:"maps_dir" yaml:"maps_dir"`

	// QuestionsDir is the output directory for question listings.
	QuestionsDir string `json:"questions_dir" yaml:"questions_dir"`

	// MaxQuestions caps the number of questions per map. Zero means
	// no cap.
	MaxQuestions int `json:"max_questions" yaml:"max_questions"`

	// BatchSize groups answer-generation prompts per request
	// (default 16).
	BatchSize int `json:"batch_size" yaml:"batch_size"`
}

// GraphStoreConfig holds settings for the graph index store.
type GraphStoreConfig struct {
	// MapsDir is the directory of concept map JSON files to ingest.
	MapsDir string `json:"maps_dir" yaml:"maps_dir"`

	// IndexDir is the directory holding the SQLite index database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Synthesis  SynthesisConfig  `json:"synthesis" yaml:"synthesis"`
	GraphStore GraphStoreConfig `json:"graph_store" yaml:"graph_store"`
}
