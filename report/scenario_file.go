package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"rental-sim/domain"
	"rental-sim/service"
)

// scenarioFile mirrors the Worst/Best form: raw text per field key.
type scenarioFile struct {
	Worst map[string]string `yaml:"worst"`
	Best  map[string]string `yaml:"best"`
}

// ParseScenarios reads Worst and Best parameter sets from YAML. Fields left
// out keep the recommended Worst/Best values.
func ParseScenarios(r io.Reader) (worst, best domain.ParameterSet, err error) {
	var file scenarioFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return worst, best, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	worst, err = service.ParseParameters(domain.RecommendedWorst(), file.Worst)
	if err != nil {
		return worst, best, fmt.Errorf("worst: %w", err)
	}
	best, err = service.ParseParameters(domain.RecommendedBest(), file.Best)
	if err != nil {
		return worst, best, fmt.Errorf("best: %w", err)
	}
	return worst, best, nil
}

// LoadScenarioFile reads a scenario YAML file from disk.
func LoadScenarioFile(path string) (worst, best domain.ParameterSet, err error) {
	f, err := os.Open(path)
	if err != nil {
		return worst, best, fmt.Errorf("reading scenario file: %w", err)
	}
	defer f.Close()
	return ParseScenarios(f)
}
