// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Backend selects how a binary document format is turned into text.
type Backend string

const (
	// BackendNative decodes in-process (dslipak/pdf for PDF, zip/XML for DOCX).
	BackendNative Backend = "native"
	// BackendMarkitdown pipes the document through the markitdown container image.
	BackendMarkitdown Backend = "markitdown"
	// BackendTika posts the document to an Apache Tika server.
	BackendTika Backend = "tika"
	// BackendNone leaves the format without a reader.
	BackendNone Backend = "none"
)

// DataConfig holds the Record Store locations.
type DataConfig struct {
	// ResumeDir is the directory scanned for source documents.
	ResumeDir string `mapstructure:"resume_dir" yaml:"resume_dir"`

	// ParsedDir receives per-document profiles and the combined output.
	ParsedDir string `mapstructure:"parsed_dir" yaml:"parsed_dir"`

	// FeaturesDir receives the feature table in CSV and JSON.
	FeaturesDir string `mapstructure:"features_dir" yaml:"features_dir"`

	// FeatureTable overrides the CSV the rank stage joins against. Empty
	// means resume_features.csv inside FeaturesDir.
	FeatureTable string `mapstructure:"feature_table" yaml:"feature_table"`

	// Output is the ranked results JSON path.
	Output string `mapstructure:"output" yaml:"output"`

	// JobDescription is the plain-text job description path.
	JobDescription string `mapstructure:"job_description" yaml:"job_description"`
}

// ExtractConfig holds settings for the parse stage.
type ExtractConfig struct {
	// Workers bounds the number of documents processed concurrently (default 4).
	Workers int `mapstructure:"workers" yaml:"workers"`

	// ExcerptChars is the length of raw_text_excerpt in characters (default 2000).
	ExcerptChars int `mapstructure:"excerpt_chars" yaml:"excerpt_chars"`

	PDFBackend  Backend `mapstructure:"pdf_backend" yaml:"pdf_backend"`
	DocxBackend Backend `mapstructure:"docx_backend" yaml:"docx_backend"`

	// TikaURL is the Tika server base URL (e.g. "http://localhost:9998").
	TikaURL string `mapstructure:"tika_url" yaml:"tika_url"`

	// Timeout bounds a single external extraction call.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// VocabularyConfig overrides the built-in skill vocabulary.
type VocabularyConfig struct {
	Version string   `mapstructure:"version" yaml:"version"`
	Skills  []string `mapstructure:"skills" yaml:"skills"`
}

// RankingConfig holds the tier thresholds.
type RankingConfig struct {
	HighThreshold     float64 `mapstructure:"high_threshold" yaml:"high_threshold"`
	ModerateThreshold float64 `mapstructure:"moderate_threshold" yaml:"moderate_threshold"`
}

// Config groups all stage configurations for the pipeline.
type Config struct {
	Data       DataConfig       `mapstructure:"data" yaml:"data"`
	Extract    ExtractConfig    `mapstructure:"extract" yaml:"extract"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary" yaml:"vocabulary"`
	Ranking    RankingConfig    `mapstructure:"ranking" yaml:"ranking"`
}

// Defaults returns the configuration used when no file, env or flag overrides
// a key.
func Defaults() Config {
	return Config{
		Data: DataConfig{
			ResumeDir:   "data/resumes",
			ParsedDir:   "data/parsed",
			FeaturesDir: "data/features",
			Output:      "data/results.json",
		},
		Extract: ExtractConfig{
			Workers:      4,
			ExcerptChars: 2000,
			PDFBackend:   BackendNative,
			DocxBackend:  BackendNative,
			Timeout:      60 * time.Second,
		},
		Ranking: RankingConfig{
			HighThreshold:     0.65,
			ModerateThreshold: 0.45,
		},
	}
}
