package config

import (
	"flag"
	"os"
	"time"

	"orderdeck/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote content store
//	-d string   content store dataset
//	-b string   path to the local client database
//	-t int      remote request timeout in seconds
//
// Credentials and the store token are deliberately not flags; they come
// from the environment or the JSON file. The function filters os.Args to
// only include the flags it knows about, using flagx.FilterArgs, to avoid
// interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-b", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreEndpointAddr, "a", cfg.StoreEndpointAddr, "base URL of the remote content store")
	fs.StringVar(&cfg.StoreDataset, "d", cfg.StoreDataset, "content store dataset")
	fs.StringVar(&cfg.DatabasePath, "b", cfg.DatabasePath, "path to the local client database")
	timeoutSecs := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "remote request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSecs) * time.Second
}
