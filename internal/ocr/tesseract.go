package ocr

import (
	"fmt"
	"os"
	"os/exec"
)

const tempFilePattern = "stubocr_*"

// Tesseract extracts text by shelling out to the tesseract binary. Used by
// the stub service when real extraction is wanted.
type Tesseract struct {
	command string
}

func Default() (*Tesseract, error) {
	return newTesseract("tesseract")
}

func newTesseract(command string) (*Tesseract, error) {
	t := &Tesseract{command: command}
	err := t.test()
	if err != nil {
		return nil, fmt.Errorf("tesseract initialization failed, %w", err)
	}

	return t, nil
}

func (t *Tesseract) test() error {
	cmd := exec.Command(t.command, "--version")
	_, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("testing tesseract installation, %w", err)
	}

	return nil
}

func (t *Tesseract) Run(file string) (string, error) {
	cmd := exec.Command(t.command, file, "stdout", "quiet")

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("running tesseract, %w", err)
	}

	return string(out), nil
}

// Extract runs tesseract over in-memory image data via a temp file.
func (t *Tesseract) Extract(_ string, data []byte) (string, error) {
	f, err := os.CreateTemp("", tempFilePattern)
	if err != nil {
		return "", fmt.Errorf("creating temp image, %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("writing temp image, %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing temp image, %w", err)
	}

	return t.Run(f.Name())
}
