package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Hariharan-afk/bankledger/internal/bank"
	"github.com/Hariharan-afk/bankledger/internal/batch"
	"github.com/Hariharan-afk/bankledger/internal/config"
	"github.com/Hariharan-afk/bankledger/internal/csvio"
	"github.com/Hariharan-afk/bankledger/internal/currency"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("bankledger %s (commit: %s, built: %s)\n", Version, Commit, Date)
		return
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "apply":
		err = runApply(os.Args[2:])
	case "dump-ledgers":
		err = runDumpLedgers(os.Args[2:])
	case "statement":
		err = runStatement(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `bankledger replays transaction batches against accounts.

Usage:
  bankledger apply        -accounts FILE -transactions FILE -out-balances FILE
  bankledger dump-ledgers -accounts FILE -transactions FILE -out-ledgers FILE
  bankledger statement    -accounts FILE [-transactions FILE] -owner NAME [-out FILE]
  bankledger --version

Common flags:
  -config FILE      YAML config file
  -log-level LEVEL  debug, info, warn or error (default info)
  -delimiter CHAR   force the input delimiter instead of sniffing
`)
}

type commonOptions struct {
	configPath string
	logLevel   string
	delimiter  string
}

func registerCommon(fs *flag.FlagSet, opts *commonOptions) {
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&opts.delimiter, "delimiter", "", "force the input delimiter instead of sniffing")
}

// setup folds the config file and command line into the run settings and
// builds the logger. Flags win over file values.
func setup(opts commonOptions) (config.Config, *zap.Logger, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, nil, err
		}
		cfg = loaded
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.delimiter != "" {
		cfg.CSV.Delimiter = opts.delimiter
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := newLogger(level)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	return cfg, logger, nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// pick resolves a path from the flag or the config file, flag first.
func pick(flagValue, cfgValue, name string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfgValue != "" {
		return cfgValue, nil
	}
	return "", fmt.Errorf("missing -%s (or %q in the config file)", name, name)
}

// loadAndApply runs the replay pipeline: load accounts, read the batch,
// apply it. The returned slice keeps account file order for exports. An
// empty transactionsPath loads accounts only.
func loadAndApply(cfg config.Config, logger *zap.Logger, accountsPath, transactionsPath string) ([]*bank.Account, error) {
	accounts, err := csvio.LoadAccountsFile(accountsPath, cfg.Comma())
	if err != nil {
		return nil, err
	}
	logger.Info("accounts loaded", zap.String("path", accountsPath), zap.Int("count", len(accounts)))

	if transactionsPath == "" {
		return accounts, nil
	}

	byOwner, err := bank.ByOwner(accounts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", accountsPath, err)
	}

	records, err := csvio.ReadRecordsFile(transactionsPath, cfg.Comma())
	if err != nil {
		return nil, err
	}
	if err := batch.Apply(byOwner, records); err != nil {
		return nil, fmt.Errorf("%s: %w", transactionsPath, err)
	}
	logger.Info("batch applied", zap.String("path", transactionsPath), zap.Int("records", len(records)))
	return accounts, nil
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	var opts commonOptions
	registerCommon(fs, &opts)
	accountsFlag := fs.String("accounts", "", "path to the accounts CSV")
	transactionsFlag := fs.String("transactions", "", "path to the transactions CSV")
	outFlag := fs.String("out-balances", "", "where to write the balances CSV")
	fs.Parse(args)

	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	accountsPath, err := pick(*accountsFlag, cfg.Accounts, "accounts")
	if err != nil {
		return err
	}
	transactionsPath, err := pick(*transactionsFlag, cfg.Transactions, "transactions")
	if err != nil {
		return err
	}
	if *outFlag == "" {
		return errors.New("missing -out-balances")
	}

	accounts, err := loadAndApply(cfg, logger, accountsPath, transactionsPath)
	if err != nil {
		return err
	}

	if err := csvio.WriteBalancesFile(*outFlag, accounts); err != nil {
		return err
	}
	logger.Info("balances written", zap.String("path", *outFlag), zap.Int("accounts", len(accounts)))
	return nil
}

func runDumpLedgers(args []string) error {
	fs := flag.NewFlagSet("dump-ledgers", flag.ExitOnError)
	var opts commonOptions
	registerCommon(fs, &opts)
	accountsFlag := fs.String("accounts", "", "path to the accounts CSV")
	transactionsFlag := fs.String("transactions", "", "path to the transactions CSV")
	outFlag := fs.String("out-ledgers", "", "where to write the combined transactions CSV")
	fs.Parse(args)

	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	accountsPath, err := pick(*accountsFlag, cfg.Accounts, "accounts")
	if err != nil {
		return err
	}
	transactionsPath, err := pick(*transactionsFlag, cfg.Transactions, "transactions")
	if err != nil {
		return err
	}
	if *outFlag == "" {
		return errors.New("missing -out-ledgers")
	}

	accounts, err := loadAndApply(cfg, logger, accountsPath, transactionsPath)
	if err != nil {
		return err
	}

	if err := csvio.WriteTransactionsFile(*outFlag, accounts); err != nil {
		return err
	}
	logger.Info("ledgers written", zap.String("path", *outFlag), zap.Int("accounts", len(accounts)))
	return nil
}

func runStatement(args []string) error {
	fs := flag.NewFlagSet("statement", flag.ExitOnError)
	var opts commonOptions
	registerCommon(fs, &opts)
	accountsFlag := fs.String("accounts", "", "path to the accounts CSV")
	transactionsFlag := fs.String("transactions", "", "path to the transactions CSV (optional)")
	ownerFlag := fs.String("owner", "", "account owner to print")
	outFlag := fs.String("out", "", "write the ledger as CSV here instead of printing the statement")
	fs.Parse(args)

	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if *ownerFlag == "" {
		return errors.New("missing -owner")
	}
	accountsPath, err := pick(*accountsFlag, cfg.Accounts, "accounts")
	if err != nil {
		return err
	}
	transactionsPath := *transactionsFlag
	if transactionsPath == "" {
		transactionsPath = cfg.Transactions
	}

	accounts, err := loadAndApply(cfg, logger, accountsPath, transactionsPath)
	if err != nil {
		return err
	}

	var account *bank.Account
	for _, a := range accounts {
		if a.Owner() == *ownerFlag {
			account = a
			break
		}
	}
	if account == nil {
		return fmt.Errorf("%w: %q", bank.ErrUnknownAccount, *ownerFlag)
	}

	if *outFlag != "" {
		err = csvio.WriteLedgerFile(*outFlag, account)
	} else {
		err = printStatement(os.Stdout, account)
	}
	if err != nil {
		return err
	}

	logger.Info("statement ready",
		zap.String("owner", account.Owner()),
		zap.String("balance", currency.Format(account.Balance())),
		zap.Int("entries", len(account.Statement())))
	return nil
}

// printStatement renders one account's history for reading: every ledger
// entry with its signed display amount, then the closing balance.
func printStatement(w io.Writer, account *bank.Account) error {
	if _, err := fmt.Fprintf(w, "Statement for %s\n", account.Owner()); err != nil {
		return err
	}
	for _, entry := range account.Statement() {
		other := ""
		if entry.Other != "" {
			other = "  " + entry.Other
		}
		if _, err := fmt.Fprintf(w, "  %-12s  %14s%s\n", entry.Kind, currency.Format(entry.Signed()), other); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Closing balance: %s\n", currency.Format(account.Balance()))
	return err
}
