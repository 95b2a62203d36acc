// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// StageExtract is the name of the stage reading the raw XML and producing CSV files.
	StageExtract = "extract"
	// StageNormalize is the name of the stage normalizing the extracted CSV files.
	StageNormalize = "normalize"
	// StageLoad is the name of the stage loading the normalized CSV files into the database.
	StageLoad = "load"

	defaultDatabaseService = "postgres"
)

var (
	// ErrParsing reports failures that occur while decoding a pipeline file.
	ErrParsing = errors.New("error parsing")

	// StageOrder is the fixed execution order of the pipeline stages.
	StageOrder = []string{StageExtract, StageNormalize, StageLoad}

	// defaultOutputDirs are the directories the stages exchange CSV artifacts through.
	defaultOutputDirs = []string{"output/csv", "output/norm_csv"}
)

// PipelineConfig holds the mapping between pipeline stages and compose services,
// the database service name, and the output directories that clean should empty.
type PipelineConfig struct {
	Stages     map[string]StageConfig `yaml:"stages,omitempty"`
	Database   DatabaseConfig         `yaml:"database,omitempty"`
	OutputDirs []string               `yaml:"outputDirs,omitempty"`
}

// StageConfig holds the configuration for a single pipeline stage.
type StageConfig struct {
	Service string `yaml:"service"`
}

// DatabaseConfig holds the configuration for the database dependency.
type DatabaseConfig struct {
	Service string `yaml:"service,omitempty"`
}

// DefaultPipelineConfig returns the configuration matching the stock compose
// setup: every stage maps to the service with the same name.
func DefaultPipelineConfig() *PipelineConfig {
	stages := make(map[string]StageConfig, len(StageOrder))
	for _, name := range StageOrder {
		stages[name] = StageConfig{Service: name}
	}

	return &PipelineConfig{
		Stages:     stages,
		Database:   DatabaseConfig{Service: defaultDatabaseService},
		OutputDirs: defaultOutputDirs,
	}
}

// NewPipelineConfigFromPath parses the pipeline file at path and returns the
// resulting configuration merged with the defaults. It reports failures
// encountered while reading or decoding the data.
func NewPipelineConfigFromPath(path string) (*PipelineConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	parsed := new(PipelineConfig)
	if err := decoder.Decode(parsed); err != nil {
		// An empty file is a valid configuration, keep the defaults.
		if errors.Is(err, io.EOF) {
			return DefaultPipelineConfig(), nil
		}

		return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
	}

	config := DefaultPipelineConfig()
	unknownStages := []string{}
	for name, stage := range parsed.Stages {
		if _, ok := config.Stages[name]; !ok {
			unknownStages = append(unknownStages, name)
			continue
		}
		if stage.Service != "" {
			config.Stages[name] = stage
		}
	}

	if len(unknownStages) > 0 {
		slices.Sort(unknownStages)
		return nil, fmt.Errorf("%w %q: unknown stages: %s", ErrParsing, path, strings.Join(unknownStages, ", "))
	}

	if parsed.Database.Service != "" {
		config.Database = parsed.Database
	}
	if len(parsed.OutputDirs) > 0 {
		config.OutputDirs = parsed.OutputDirs
	}

	return config, nil
}

// ServiceForStage returns the compose service mapped to the named stage.
func (c *PipelineConfig) ServiceForStage(name string) string {
	if stage, ok := c.Stages[name]; ok && stage.Service != "" {
		return stage.Service
	}

	return name
}
