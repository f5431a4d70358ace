package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// LoginCmd exchanges credentials for a token
type LoginCmd struct {
	Email    string `help:"Account email" short:"e"`
	Password string `help:"Account password (prompted when omitted)" env:"HYPERFOCUS_PASSWORD"`
}

// Run executes the login command
func (l *LoginCmd) Run(cli *CLI) error {
	if err := promptMissing(&l.Email, &l.Password, nil); err != nil {
		return err
	}

	cred, err := cli.Container.AuthService.Login(context.Background(), l.Email, l.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("Logged in as %s\n", cred.Email)
	return nil
}

// RegisterCmd creates an account and logs into it
type RegisterCmd struct {
	Email    string `help:"Account email" short:"e"`
	Name     string `help:"Display name" short:"n"`
	Password string `help:"Account password (prompted when omitted)" env:"HYPERFOCUS_PASSWORD"`
}

// Run executes the register command
func (r *RegisterCmd) Run(cli *CLI) error {
	if err := promptMissing(&r.Email, &r.Password, &r.Name); err != nil {
		return err
	}

	user, err := cli.Container.AuthService.Register(context.Background(), domain.Registration{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("Account created for %s <%s>\n", user.Name, user.Email)
	return nil
}

// promptMissing asks for the fields not given as flags. name is nil when
// logging in.
func promptMissing(email, password, name *string) error {
	var fields []huh.Field
	if name != nil && *name == "" {
		fields = append(fields, huh.NewInput().Title("Name").Value(name))
	}
	if *email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(email).Validate(domain.ValidateEmail))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password))
	}
	if len(fields) == 0 {
		return nil
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).WithOutput(os.Stderr).Run(); err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}
	return nil
}

// LogoutCmd forgets the saved token
type LogoutCmd struct{}

// Run executes the logout command
func (l *LogoutCmd) Run(cli *CLI) error {
	if err := cli.Container.AuthService.Logout(context.Background()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Println("Logged out")
	return nil
}

// WhoamiCmd shows the account behind the current token
type WhoamiCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the whoami command
func (w *WhoamiCmd) Run(cli *CLI) error {
	user, err := cli.Container.AuthService.WhoAmI(context.Background())
	if err != nil {
		return err
	}

	if done, err := printStructured(w.Format, user); done {
		return err
	}

	fmt.Printf("Name:   %s\n", user.Name)
	fmt.Printf("Email:  %s\n", user.Email)
	fmt.Printf("ID:     %d\n", user.ID)
	fmt.Printf("Active: %t\n", user.IsActive)
	fmt.Printf("Since:  %s\n", user.CreatedAt.Local().Format("2006-01-02"))
	return nil
}
