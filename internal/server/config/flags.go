package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/flagx"
)

// parseFlags applies the command-line flags it recognizes:
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-d string   PostgreSQL DSN
//	-s string   token signing secret
//	-k string   session cookie secret
//	-t int      token validity, minutes (0 = no expiry)
//	-g string   gin mode
//	-secure     Secure session cookie
//	-m          run migrations on start
//	-memory     in-memory storage
//
// Unknown arguments are filtered out first so subcommands and flags owned by
// other components do not break parsing.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args,
		[]string{"-a", "-d", "-s", "-k", "-t", "-g"},
		"-secure", "-m", "-memory",
	)

	fs := flag.NewFlagSet("tasktracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "token signing secret")
	fs.StringVar(&cfg.SessionSecret, "k", cfg.SessionSecret, "session cookie secret")
	validity := fs.Int("t", int(cfg.TokenValidityDuration.Minutes()), "token validity (in minutes, 0 = no expiry)")
	fs.StringVar(&cfg.GinMode, "g", cfg.GinMode, "gin mode")
	fs.BoolVar(&cfg.SecureCookies, "secure", cfg.SecureCookies, "secure session cookie")
	fs.BoolVar(&cfg.MigrateOnStart, "m", cfg.MigrateOnStart, "run migrations on start")
	fs.BoolVar(&cfg.InMemory, "memory", cfg.InMemory, "use in-memory storage")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.TokenValidityDuration = time.Duration(*validity) * time.Minute
		}
	})
	return nil
}
