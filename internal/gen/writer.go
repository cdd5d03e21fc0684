package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteHeader writes the rendered header to <outputDir>/<family>-pinctrl.h.
// It creates the directory if it doesn't exist and returns the written path.
func WriteHeader(content []byte, outputDir, family string) (string, error) {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, family+"-pinctrl.h")

	err = os.WriteFile(outputPath, content, filePerm)
	if err != nil {
		return "", fmt.Errorf("writing header %s: %w", outputPath, err)
	}

	return outputPath, nil
}
