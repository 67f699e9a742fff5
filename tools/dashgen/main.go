// Package main generates the Grafana dashboard and Prometheus rule artifacts
// for the onetech backend and validates their PromQL against known metrics.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/onetech-shop/onetech-backend/tools/dashgen/dashboards"
	"github.com/onetech-shop/onetech-backend/tools/dashgen/rules"
	"github.com/onetech-shop/onetech-backend/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}

	if result := validate.Dashboard(dash, KnownMetrics); !result.Ok() {
		return fmt.Errorf("dashboard validation failed: %v", result.Errors)
	}

	recording := rules.RecordingRules()
	alerts := rules.AlertRules()
	if result := validate.Exprs(ruleExprs(recording, alerts), KnownMetrics); !result.Ok() {
		return fmt.Errorf("rule validation failed: %v", result.Errors)
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	if cfg.DashboardEnabled {
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling dashboard: %w", err)
		}
		data = append(data, '\n')

		path := filepath.Join(cfg.OutputDir, "grafana", "data", "onetech-overview.json")
		if err := writeFile(path, data); err != nil {
			return err
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}

	if cfg.RulesEnabled {
		for _, cr := range []rules.PrometheusRule{recording, alerts} {
			data, err := yaml.Marshal(cr)
			if err != nil {
				return fmt.Errorf("marshaling %s: %w", cr.Metadata.Name, err)
			}
			data = append([]byte(generatedHeader), data...)

			path := filepath.Join(cfg.OutputDir, "prometheus", cr.Metadata.Name+".yaml")
			if err := writeFile(path, data); err != nil {
				return err
			}
			fmt.Printf("dashgen: wrote %s\n", path)
		}
	}

	return nil
}

func ruleExprs(crs ...rules.PrometheusRule) []string {
	var exprs []string
	for _, cr := range crs {
		for _, group := range cr.Spec.Groups {
			for _, rule := range group.Rules {
				exprs = append(exprs, rule.Expr)
			}
		}
	}
	return exprs
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
