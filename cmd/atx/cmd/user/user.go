package user

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"s3-audio-translate/cmd/atx/cmd/cmdutil"
	"s3-audio-translate/internal/app"
	"s3-audio-translate/internal/app/session"
)

var (
	email    string
	password string
)

func init() {
	addCmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	addCmd.Flags().StringVarP(&password, "password", "P", "", "account password, at least 6 characters")
	addCmd.MarkFlagRequired("email")
	addCmd.MarkFlagRequired("password")

	Cmd.AddCommand(addCmd)
}

// Cmd represents the user command
var Cmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := cmdutil.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := cmdutil.SignalContext()
		defer stop()

		authenticator, cleanup, err := app.InitializeAuthenticator(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		// Same rules as the registration form; the password is typed once here.
		out := session.NewMachine(authenticator, logger).SubmitRegister(ctx, session.New(), email, password, password)
		if out.Err != nil {
			return errors.New(session.NoticeText(out.Err))
		}
		for _, n := range out.Notices {
			fmt.Fprintln(cmd.OutOrStdout(), n.Message)
		}
		return nil
	},
}
