package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-tracker/internal/platform/auth"
)

var errEmptyPassword = errors.New("password must not be empty")

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Read a password from stdin and print its argon2id hash",
		Long: `Reads the first line of stdin and prints a PHC-formatted argon2id hash
suitable for auth.password_hash (or APP_AUTH_PASSWORD_HASH).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return writeErr(cmd, fmt.Errorf("reading password: %w", err))
			}

			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				return writeErr(cmd, errEmptyPassword)
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return writeErr(cmd, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}
