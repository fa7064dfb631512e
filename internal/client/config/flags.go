package config

import (
	"flag"
	"os"

	"soukclient/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   base URL of the backend API (default from Config)
//	-d string   path of the local sqlite database
//	-l string   UI language ("ar", "fr", "en")
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "u", cfg.ServerBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local sqlite database")
	fs.StringVar(&cfg.Language, "l", cfg.Language, "UI language")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
