package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config, logger *Logger) {
	version := GetVersion()
	build := GetBuild()
	commit := GetGitCommit()

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 70
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		`  .d88888b.  Y88b   d88P Y88b   d88P  .d8888b.        d8888 8888888b.  8888888888`,
		` d88P" "Y88b  Y88b d88P   Y88b d88P  d88P  Y88b      d88888 888   Y88b 888`,
		` 888     888   Y88o88P     Y88o88P   888    888     d88P888 888    888 888`,
		` 888     888    Y888P       Y888P    888           d88P 888 888   d88P 8888888`,
		` 888     888    d888b        888     888          d88P  888 8888888P"  888`,
		` 888     888   d88888b       888     888    888  d88P   888 888 T88b   888`,
		` Y88b. .d88P  d88P Y88b      888     Y88b  d88P d8888888888 888  T88b  888`,
		`  "Y88888P"  d88P   Y88b     888      "Y8888P" d88P     888 888   T88b 8888888888`,
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s  Home-Care Equipment & Intervention Management%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")

	kvPad := 16
	kvLines := [][2]string{
		{"Version", version},
		{"Build", build},
		{"Commit", commit},
		{"Environment", config.Environment},
		{"API URL", config.API.BaseURL},
		{"Session Store", config.Storage.Path},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")

	logger.Info().
		Str("version", version).
		Str("build", build).
		Str("commit", commit).
		Str("environment", config.Environment).
		Str("api_url", config.API.BaseURL).
		Msg("Application started")
}
