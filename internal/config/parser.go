package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads configuration from an io.Reader. Unknown keys are skipped so
// configs survive version changes; malformed values fall back to defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		switch currentSection {
		case "":
			applyRootKey(cfg, key, value)
		case "export":
			applyExportKey(cfg, key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.validate()
	return cfg, nil
}

func applyRootKey(cfg *Config, key, value string) {
	switch key {
	case "zoom_step":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			cfg.ZoomStep = v
		}
	case "min_scale":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			cfg.MinScale = v
		}
	case "max_scale":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			cfg.MaxScale = v
		}
	}
}

func applyExportKey(cfg *Config, key, value string) {
	switch key {
	case "format":
		cfg.Export.Format = value
	case "quality":
		if v, err := strconv.Atoi(value); err == nil {
			cfg.Export.Quality = v
		}
	}
}
