package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/username/contact-book/internal/reminder"
	"github.com/username/contact-book/internal/storage"
)

func remindCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Report upcoming birthdays every day at reminder.daily_time",
		Long:  "Run in the foreground and check upcoming birthdays once a day. The address book file is re-read on every check.",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.NewFileStore(cfg.Storage.File, logger)
			if err != nil {
				return err
			}

			hour, minute := cfg.Reminder.GetDailyTime()
			r := reminder.New(store, cfg.Birthdays.WindowDays, hour, minute, cmd.OutOrStdout(), logger)

			if once {
				if _, err := r.RunOnce(); err != nil {
					return fmt.Errorf("birthday check failed: %w", err)
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "⏰ Checking birthdays daily at %02d:%02d (Ctrl+C to stop)\n", hour, minute)
			return r.Start(ctx)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Run a single check and exit")

	return cmd
}
