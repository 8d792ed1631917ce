package ocr

import "os/exec"

// ExtractText runs tesseract over an image file on disk.
// Menus in the wild mix English, Ukrainian and Russian.
func ExtractText(filePath string) (string, error) {
	cmd := exec.Command("tesseract", filePath, "stdout", "-l", "eng+ukr+rus")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
