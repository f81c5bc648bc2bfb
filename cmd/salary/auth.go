package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"managesalary/internal/domain/session"
)

func (a *app) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return fmt.Errorf("--email is required")
	}
	pass, err := resolvePassword(*password)
	if err != nil {
		return err
	}

	token, err := a.client.Login(ctx, *email, pass)
	if err != nil {
		return err
	}
	if err := a.store.SetToken(token); err != nil {
		return err
	}
	fmt.Println("Logged in.")
	return nil
}

func (a *app) runSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	name := fs.String("name", "", "Display name")
	password := fs.String("password", "", "Password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return fmt.Errorf("--email is required")
	}
	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	pass, err := resolvePassword(*password)
	if err != nil {
		return err
	}

	token, err := a.client.Signup(ctx, *email, pass, *name)
	if err != nil {
		return err
	}
	if err := a.store.SetToken(token); err != nil {
		return err
	}
	fmt.Println("Account created and logged in.")
	return nil
}

func (a *app) runLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.store.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func (a *app) runWhoami(args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Wait for the silent refresh so the claims reflect the freshest token.
	<-a.refreshDone

	if !a.store.IsLogged() {
		fmt.Println("Not logged in.")
		return nil
	}

	claims, err := session.ParseClaims(a.store.Token())
	if err != nil {
		return err
	}
	if claims.Email != "" {
		fmt.Printf("Email:   %s\n", claims.Email)
	}
	if claims.Subject != "" {
		fmt.Printf("Subject: %s\n", claims.Subject)
	}
	if !claims.ExpiresAt.IsZero() {
		fmt.Printf("Expires: %s\n", claims.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

func (a *app) runTheme(args []string) error {
	fs := flag.NewFlagSet("theme", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fmt.Println(a.prefs.Theme())
		return nil
	}
	theme := session.Theme(fs.Arg(0))
	if err := a.prefs.SetTheme(theme); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s.\n", theme)
	return nil
}

func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Print("Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	pass := strings.TrimRight(line, "\r\n")
	if pass == "" {
		return "", fmt.Errorf("password is required")
	}
	return pass, nil
}
