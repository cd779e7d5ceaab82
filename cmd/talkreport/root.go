package main

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	_ "github.com/lib/pq"

	"talkreport/config"
	"talkreport/internal/adapters/email"
	"talkreport/internal/domain"
	"talkreport/internal/repository/postgres"
	"talkreport/internal/services"
)

func newRootCommand() *cobra.Command {
	var verbose bool
	var talkStatus string
	var includeVotes bool
	var mailTo string

	rootCmd := &cobra.Command{
		Use:           "talkreport <conference>",
		Short:         "Export conference talks with abstracts, schedule and speaker ticket status as JSON",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseTalkStatus(talkStatus)
			if err != nil {
				return err
			}
			conference := args[0]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := config.NewLogger()

			db, err := sql.Open("postgres", cfg.DBUrl)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			ctx := cmd.Context()
			if err := db.PingContext(ctx); err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}

			ticketSvc := services.NewTicketService(
				logger,
				postgres.NewTicketRepository(db),
				postgres.NewOrderRepository(db),
			)
			reportSvc := services.NewReportService(
				logger,
				postgres.NewTalkRepository(db),
				postgres.NewSpeakerRepository(db),
				postgres.NewVoteRepository(db),
				ticketSvc,
				cfg.SiteDomain,
				verbose,
			)

			report, err := reportSvc.BuildReport(ctx, conference, status, domain.ReportOptions{IncludeVotes: includeVotes})
			if err != nil {
				return err
			}
			if err := writeJSON(cmd, report); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			if mailTo == "" {
				return nil
			}
			// The report is already on stdout; delivery failure still exits non-zero.
			doc, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("render report for mail: %w", err)
			}
			mailer, err := email.NewMailer(email.MailerConfig{
				Provider:    cfg.EmailProvider,
				FromAddress: cfg.EmailFromAddress,
				FromName:    cfg.EmailFromName,
				SES: email.SESConfig{
					Region:             cfg.SESRegion,
					AccessKeyID:        cfg.SESAccessKeyID,
					SecretAccessKey:    cfg.SESSecretAccessKey,
					InsecureSkipVerify: cfg.SESInsecureSkipVerify,
				},
			})
			if err != nil {
				return fmt.Errorf("create mailer: %w", err)
			}
			emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer())
			return emailSvc.SendReport(ctx, &domain.ReportEmailData{
				To:         mailTo,
				Conference: conference,
				Status:     string(status),
				TalkCount:  report.TalkCount(),
				JSON:       string(doc),
			})
		},
	}

	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Warn about talks that are not scheduled yet")
	rootCmd.Flags().StringVar(&talkStatus, "talk-status", "proposed", "Status of the talks to report. Choices: proposed, accepted, canceled")
	rootCmd.Flags().BoolVar(&includeVotes, "votes", false, "Add the community votes to each talk")
	rootCmd.Flags().StringVar(&mailTo, "mail-to", "", "Also email the report to this address")

	return rootCmd
}
