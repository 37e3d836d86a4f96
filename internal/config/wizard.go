package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// imageDirCandidates are common locations of a site's image folder, in
// order of preference.
var imageDirCandidates = []string{
	"assets/images",
	"src/assets/images",
	"public/images",
	"static/images",
	"images",
}

// detectImageDir returns the first candidate image directory that exists.
func detectImageDir() string {
	for _, dir := range imageDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	detected := detectImageDir()
	if detected != "" {
		fmt.Printf("Detected image directory: %s\n\n", detected)
		cfg.AssetDir = detected
	}

	// 1. Image directory.
	assetPrompt := promptui.Prompt{
		Label:   "Image directory",
		Default: cfg.AssetDir,
	}
	assetDir, err := assetPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("image directory: %w", err)
	}
	cfg.AssetDir = assetDir

	// 2. Extensions.
	extPrompt := promptui.Prompt{
		Label:   "Image extensions (comma-separated)",
		Default: ".jpg,.jpeg,.png,.webp",
	}
	extStr, err := extPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("extensions: %w", err)
	}
	cfg.Extensions = splitAndTrim(extStr)

	// 3. Content file.
	contentPrompt := promptui.Prompt{
		Label:   "Content file (leave blank for the built-in sample)",
		Default: "content.yml",
	}
	contentFile, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}
	cfg.ContentFile = contentFile

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for `folio server`",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 0 || p > 65535 {
				return fmt.Errorf("enter a port between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Watch mode.
	watchPrompt := promptui.Select{
		Label: "Reindex images automatically when the directory changes?",
		Items: []string{"yes", "no"},
	}
	watchIdx, _, err := watchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("watch selection: %w", err)
	}
	cfg.Watch = watchIdx == 0

	// 6. Static export directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for `folio site`",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
