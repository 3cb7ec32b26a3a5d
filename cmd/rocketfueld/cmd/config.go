package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"rocketcandle/app"
)

// initAppConfig helps to override default appConfig template and configs.
func initAppConfig() (string, app.Config) {
	return app.DefaultConfigTemplate, app.DefaultConfig()
}

// writeConfigFile renders cfg into path, creating parent directories.
func writeConfigFile(path string, cfg app.Config) error {
	tmplText, _ := initAppConfig()
	tmpl, err := template.New("app.toml").Parse(tmplText)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
