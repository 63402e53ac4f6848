package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/study"
	studyjson "github.com/fwojciec/study/json"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session",
		Long: `Sign in to the backend. The password is prompted for when not given
and stdin is a terminal, otherwise it is read from the first line of stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required: %w", study.ErrValidation)
			}
			if password == "" {
				p, err := a.readPassword()
				if err != nil {
					return err
				}
				password = p
			}

			client, err := a.newClient()
			if err != nil {
				return err
			}
			creds, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := studyjson.SaveCredentials(a.cfg.CredentialsFile, creds); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			name := creds.Name
			if name == "" {
				name = creds.Email
			}
			fmt.Fprintf(a.stdout, "Logged in as %s.\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func (a *app) readPassword() (string, error) {
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(a.stderr, "Password: ")
		p, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(p), nil
	}
	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := studyjson.LoadCredentials(a.cfg.CredentialsFile); errors.Is(err, study.ErrNotAuthenticated) {
				fmt.Fprintln(a.stdout, "Not logged in.")
				return nil
			}
			client, err := a.newClient()
			if err != nil {
				return err
			}
			if err := client.Logout(cmd.Context()); err != nil && !errors.Is(err, study.ErrUnauthorized) {
				a.logger.Warn("backend logout failed", "error", err)
			}
			if err := studyjson.DeleteCredentials(a.cfg.CredentialsFile); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, "Logged out.")
			return nil
		},
	}
}
