package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/address-book/internal/assistant"
	"github.com/username/address-book/internal/birthdays"
	"github.com/username/address-book/internal/config"
	"github.com/username/address-book/internal/contacts"
	"github.com/username/address-book/internal/daemon"
	"github.com/username/address-book/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     = zap.NewNop()
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "address-book",
		Short:         "Personal contact directory",
		Long:          "Stores names, phone numbers and birthdays and lists the birthdays of the coming week",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.ExpandEnvVars()

			if cfg.Daemon.LogFile != "" {
				logger = initFileLogger(cfg.Daemon.LogFile, cfg.Daemon.LogLevel)
			} else {
				logger = initLogger(cfg.Daemon.LogLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := loadDirectory()
			if err != nil {
				return err
			}

			bot := assistant.NewAssistant(dir,
				newScheduler(),
				cfg.Book.BirthdayPolicy(),
				time.Now,
				logger,
			)
			return bot.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml or $HOME/.address-book/config.yaml)")

	rootCmd.AddCommand(birthdaysCmd())
	rootCmd.AddCommand(allCmd())
	rootCmd.AddCommand(daemonCmd())

	return rootCmd
}

func birthdaysCmd() *cobra.Command {
	var todayStr string

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show birthdays of the coming week grouped by weekday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := dateutil.Today()
			if todayStr != "" {
				var err error
				today, err = dateutil.ParseDate(todayStr)
				if err != nil {
					return fmt.Errorf("invalid --today: %w", err)
				}
			}

			dir, err := loadDirectory()
			if err != nil {
				return err
			}

			logger.Info("Computing birthday digest",
				zap.String("today", dateutil.FormatDate(today)),
				zap.Int("contacts", dir.Len()))

			digest := newScheduler().Run(dir, today)
			if len(digest) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No birthdays in the coming week.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), digest.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&todayStr, "today", "", "Evaluate as of this date (DD.MM.YYYY, default: today)")

	return cmd
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List all contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := loadDirectory()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), assistant.FormatTable(dir.List()))
			return nil
		},
	}
}

func daemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Post the birthday digest every day at daemon.daily_time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := loadDirectory()
			if err != nil {
				return err
			}

			hour, minute := cfg.Daemon.GetDailyTime()
			d := daemon.NewScheduledDaemon(dir,
				newScheduler(),
				hour, minute,
				cfg.Daemon.SystemTray,
				logger,
			)
			return d.Start(cmd.Context())
		},
	}
}

func newScheduler() *birthdays.Scheduler {
	return birthdays.NewScheduler(logger, birthdays.WithYearWraparound(cfg.Book.YearWraparound))
}

func loadDirectory() (*contacts.Directory, error) {
	dir, err := contacts.LoadSeedFile(cfg.Book.SeedFile, cfg.Book.BirthdayPolicy(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	return dir, nil
}

func initLogger(level string) *zap.Logger {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := zapConfig.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return logger
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
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
		parseLevel(level),
	)

	return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	return zapLevel
}
