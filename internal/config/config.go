// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Default column designations match the survey workbook layout: six
// free-text description questions interleaved with six adjective-list
// questions, plus timestamp and demographic columns.
var (
	DefaultColumnNames = []string{
		"Timestamp",
		"Description_1", "Adjectives_1",
		"Description_2", "Adjectives_2",
		"Description_3", "Adjectives_3",
		"Description_4", "Adjectives_4",
		"Description_5", "Adjectives_5",
		"Description_6", "Adjectives_6",
		"Familiarity_AI_Gen", "AI_Art_Real", "Education",
	}
	DefaultDescriptionColumns = []string{
		"Description_1", "Description_2", "Description_3",
		"Description_4", "Description_5", "Description_6",
	}
	DefaultAdjectiveColumns = []string{
		"Adjectives_1", "Adjectives_2", "Adjectives_3",
		"Adjectives_4", "Adjectives_5", "Adjectives_6",
	}
)

// Config holds all configuration for a surveyfreq run.
type Config struct {
	InputPath string // SURVEYFREQ_INPUT, default "survey_results.xlsx"

	// ColumnNames positionally replaces the source headers before columns
	// are designated. Empty keeps the headers as loaded.
	ColumnNames        []string // SURVEYFREQ_COLUMN_NAMES (comma-separated)
	DescriptionColumns []string // SURVEYFREQ_DESCRIPTION_COLUMNS
	AdjectiveColumns   []string // SURVEYFREQ_ADJECTIVE_COLUMNS
	EntityColumns      []string // SURVEYFREQ_ENTITY_COLUMNS, default none

	DescriptionsOutput string // SURVEYFREQ_DESCRIPTIONS_OUTPUT
	AdjectivesOutput   string // SURVEYFREQ_ADJECTIVES_OUTPUT
	EntitiesOutput     string // SURVEYFREQ_ENTITIES_OUTPUT

	// WriteSummary additionally writes a per-pass overall summary
	// (word, frequency, distinct respondents) next to each output file.
	WriteSummary bool // SURVEYFREQ_WRITE_SUMMARY, default false

	CacheMaxItems int // SURVEYFREQ_CACHE_MAX_ITEMS, default 4096

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with defaults
// matching the original survey run.
func Load() *Config {
	return &Config{
		InputPath: getEnvString("SURVEYFREQ_INPUT", "survey_results.xlsx"),

		ColumnNames:        getEnvList("SURVEYFREQ_COLUMN_NAMES", DefaultColumnNames),
		DescriptionColumns: getEnvList("SURVEYFREQ_DESCRIPTION_COLUMNS", DefaultDescriptionColumns),
		AdjectiveColumns:   getEnvList("SURVEYFREQ_ADJECTIVE_COLUMNS", DefaultAdjectiveColumns),
		EntityColumns:      getEnvList("SURVEYFREQ_ENTITY_COLUMNS", nil),

		DescriptionsOutput: getEnvString("SURVEYFREQ_DESCRIPTIONS_OUTPUT", "descriptions_frequencies.csv"),
		AdjectivesOutput:   getEnvString("SURVEYFREQ_ADJECTIVES_OUTPUT", "adjectives_frequencies.csv"),
		EntitiesOutput:     getEnvString("SURVEYFREQ_ENTITIES_OUTPUT", "entities_frequencies.csv"),
		WriteSummary:       getEnvBool("SURVEYFREQ_WRITE_SUMMARY", false),

		CacheMaxItems: getEnvInt("SURVEYFREQ_CACHE_MAX_ITEMS", 4096),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

// getEnvList parses a comma-separated list, trimming whitespace and
// dropping empty elements.
func getEnvList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
