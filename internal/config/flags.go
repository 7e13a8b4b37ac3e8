package config

import (
	"flag"
	"time"
)

// flagsParsed guards against redefining flags when ParseFlags is called
// more than once in the same process (e.g. from tests).
var flagsParsed *StructuredConfig

// ParseFlags parses the command-line configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-timezone product timezone (IANA name)
//	-sync-interval background sync interval (e.g. "15m"; 0 disables)
func ParseFlags() *StructuredConfig {
	if flagsParsed != nil {
		return flagsParsed
	}

	var (
		serverAddress  string
		databaseDSN    string
		jsonConfigPath string
		timezone       string
		syncInterval   time.Duration
	)

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path")
	flag.StringVar(&timezone, "timezone", "", "Product timezone (IANA name)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (0 disables)")
	flag.Parse()

	flagsParsed = &StructuredConfig{
		App:          App{Timezone: timezone},
		Storage:      Storage{DB: DB{DSN: databaseDSN}},
		Server:       Server{HTTPAddress: serverAddress},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}

	return flagsParsed
}
