package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// editText opens editor on a temporary file holding text and returns the
// saved contents, without the final newline editors add.
func editText(editor, text string) (string, error) {
	tmpFile, err := os.CreateTemp("", "nodeedit-*.json")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(text + "\n"); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	tmpFile.Close()

	argv := strings.Fields(editor)
	if len(argv) == 0 {
		return "", fmt.Errorf("empty editor command")
	}
	cmd := exec.Command(argv[0], append(argv[1:], tmpPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	content, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to read temp file: %w", err)
	}
	res := strings.TrimSuffix(string(content), "\n")
	return strings.TrimSuffix(res, "\r"), nil
}

// getEditor returns the configured editor, then $VISUAL, $EDITOR and the
// first of vim, vi and nano found.
func getEditor(configured string) string {
	if configured != "" {
		return configured
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	for _, editor := range []string{"vim", "vi", "nano"} {
		if _, err := exec.LookPath(editor); err == nil {
			return editor
		}
	}
	return "vi"
}
