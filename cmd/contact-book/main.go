package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/username/contact-book/internal/addressbook"
	"github.com/username/contact-book/internal/assistant"
	"github.com/username/contact-book/internal/config"
	"github.com/username/contact-book/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var plain bool

	rootCmd := &cobra.Command{
		Use:           "contact-book",
		Short:         "Contact book assistant",
		Long:          "Keep names, phone numbers and birthdays, and see whose birthday is coming up",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.GetLevel())
				if err != nil {
					logger = initLogger(cfg.Log.GetLevel()) // Fallback to console
				}
			} else {
				logger = initLogger(cfg.Log.GetLevel())
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, book, err := openBook()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			session := assistant.NewSession(
				assistant.New(book, cfg.Birthdays.WindowDays, logger),
				assistant.SessionOptions{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), ForcePlain: plain},
				logger,
			)
			runErr := session.Run(ctx)

			// Save even when the session ended with an error
			if err := store.Save(book); err != nil {
				return fmt.Errorf("failed to save address book: %w", err)
			}
			return runErr
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search config.yaml)")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Disable colored output")

	rootCmd.AddCommand(birthdaysCmd())
	rootCmd.AddCommand(allCmd())
	rootCmd.AddCommand(remindCmd())

	return rootCmd
}

func birthdaysCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show birthdays in the upcoming window",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, book, err := openBook()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("days") {
				days = cfg.Birthdays.WindowDays
			}
			if days < 0 {
				return fmt.Errorf("--days must not be negative")
			}

			upcoming := book.UpcomingBirthdays(days)
			logger.Info("Upcoming birthdays listed",
				zap.Int("days", days),
				zap.Int("count", len(upcoming)))

			if len(upcoming) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No upcoming birthdays.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), assistant.FormatUpcoming(upcoming))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", addressbook.DefaultUpcomingDays, "Window size in days (default: birthdays.window_days)")

	return cmd
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Print every contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, book, err := openBook()
			if err != nil {
				return err
			}

			if book.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), "The contact book is empty.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), book.String())
			return nil
		},
	}
}

func openBook() (*storage.FileStore, *addressbook.AddressBook, error) {
	store, err := storage.NewFileStore(cfg.Storage.File, logger)
	if err != nil {
		return nil, nil, err
	}

	book, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, book, nil
}

func initLogger(level zapcore.Level) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return logger
}

func initFileLogger(logFile string, level zapcore.Level) (*zap.Logger, error) {
	if logFile == "" {
		return nil, fmt.Errorf("log file path is empty")
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,   // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core), nil
}
