package hashpw

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"warrantydesk/internal/infrastructure/auth"
)

var cost int

// NewCommand returns the hashpw command. It reads a password from the
// terminal without echo and prints the bcrypt hash to paste into
// auth.admin_password_hash. Plaintext never touches config or source.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashpw",
		Short: "Generate a bcrypt hash for the admin password",
		Long:  `Prompt for a password and print its bcrypt hash for use as auth.admin_password_hash in the configuration file.`,
		RunE:  run,
	}

	cmd.Flags().IntVarP(&cost, "cost", "c", 12, "bcrypt cost factor (10-15)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password must not be empty")
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	hasher := auth.NewBcryptPasswordHasher(cost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Println(hash)
	return nil
}

func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		// Piped input, read a single line instead.
		var line string
		if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return line, nil
	}

	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
