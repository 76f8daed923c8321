package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"keystretch/internal/config"
	"keystretch/pkg/pbkdf2"
)

var (
	configPath = flag.String("config", "/etc/keystretch/config.yaml", "Path to configuration file")
	profile    = flag.String("profile", "", "Derivation profile name from the configuration")
	saltArg    = flag.String("salt", "", "Salt, encoded per the profile's salt_encoding")
	rounds     = flag.Int("rounds", 0, "Override the profile's iteration count")
	keyLength  = flag.Int("length", 0, "Override the profile's derived key length in bytes")
	logLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	version    = flag.Bool("version", false, "Show version and exit")
)

const (
	toolVersion = "1.0.0"
	toolName    = "keystretch"

	passwordEnv = "KEYSTRETCH_PASSWORD"
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", toolName, toolVersion)
		os.Exit(0)
	}

	// Load configuration
	parser := config.NewParser(*configPath)
	cfg, err := parser.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Service.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	if err := setupLogging(level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}

	if *profile == "" {
		logrus.Fatal("A derivation profile must be selected with -profile")
	}
	if *saltArg == "" {
		logrus.Fatal("A salt must be provided with -salt")
	}

	prof, err := cfg.GetProfile(*profile)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to select derivation profile")
	}
	if *rounds > 0 {
		prof.Rounds = *rounds
	}
	if *keyLength > 0 {
		prof.KeyLength = *keyLength
	}

	logrus.WithFields(logrus.Fields{
		"version":    toolVersion,
		"profile":    prof.Name,
		"hash":       prof.Hash,
		"rounds":     prof.Rounds,
		"key_length": prof.KeyLength,
	}).Info("Deriving key")

	salt, err := prof.DecodeSalt(*saltArg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to decode salt")
	}

	password, err := readPassword()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to read password")
	}

	hashFunc, err := prof.HashFunc()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to resolve hash primitive")
	}

	key, err := pbkdf2.DeriveKeyHash(password, salt, prof.Rounds, prof.KeyLength, hashFunc)
	if err != nil {
		logrus.WithError(err).Fatal("Key derivation failed")
	}

	fmt.Println(hex.EncodeToString(key))
}

// readPassword takes the password from the environment when set,
// otherwise reads one line from stdin.
func readPassword() ([]byte, error) {
	if pass, ok := os.LookupEnv(passwordEnv); ok {
		return []byte(pass), nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// setupLogging configures the logging system
func setupLogging(level string) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: false,
	})
	logrus.SetOutput(os.Stderr)

	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %s: %w", level, err)
	}
	logrus.SetLevel(parsedLevel)

	return nil
}
