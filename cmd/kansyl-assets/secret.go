package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/juan-oclock/kansyl-assets/internal/applesecret"
)

func (a *app) appleSecret() int {
	cfg, ok := a.loadConfig()
	if !ok {
		return 1
	}
	rule := strings.Repeat("-", 60)

	fmt.Fprintln(a.stdout, strings.Repeat("=", 60))
	fmt.Fprintln(a.stdout, "Sign in with Apple - client secret generator")
	fmt.Fprintln(a.stdout, strings.Repeat("=", 60))
	fmt.Fprintln(a.stdout)

	p := applesecret.Params{
		TeamID:   cfg.Apple.TeamID,
		ClientID: cfg.Apple.ClientID,
		KeyID:    cfg.Apple.KeyID,
		KeyPath:  cfg.Apple.KeyPath,
	}
	if p.TeamID == "" || p.ClientID == "" || p.KeyID == "" || p.KeyPath == "" {
		fmt.Fprintln(a.stdout, "Enter the following from your Apple Developer account:")
		fmt.Fprintln(a.stdout)
	}
	if p.TeamID == "" {
		p.TeamID = a.prompt.Line(fmt.Sprintf("Team ID (e.g., %s): ", applesecret.DefaultTeamID))
		if p.TeamID == "" {
			fmt.Fprintf(a.stdout, "Using default: %s\n", applesecret.DefaultTeamID)
		}
	}
	if p.ClientID == "" {
		p.ClientID = a.prompt.Line(fmt.Sprintf("Services ID / Bundle ID (e.g., %s): ", applesecret.DefaultClientID))
		if p.ClientID == "" {
			fmt.Fprintf(a.stdout, "Using default: %s\n", applesecret.DefaultClientID)
		}
	}
	p = p.WithDefaults()
	if p.KeyID == "" {
		p.KeyID = a.prompt.Line("Key ID (10 characters from Apple): ")
		if p.KeyID == "" {
			fmt.Fprintf(a.stderr, "Error: Key ID is required\n")
			return 1
		}
	}
	if p.KeyPath == "" {
		p.KeyPath = a.prompt.Line("Path to .p8 key file (e.g., ./AuthKey_ABC123.p8): ")
		if p.KeyPath == "" {
			fmt.Fprintf(a.stderr, "Error: private key file path is required\n")
			return 1
		}
	}

	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "Generating JWT secret...")
	fmt.Fprintln(a.stdout)

	now := a.now()
	secret, err := applesecret.Generate(p, now)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(a.stderr, "Error: could not find private key file: %s\n", p.KeyPath)
		fmt.Fprintf(a.stderr, "Download the .p8 key from the Apple Developer portal.\n")
		return 1
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	exp := applesecret.ExpiresAt(now)
	fmt.Fprintln(a.stdout, "✓ Success! Sign in with Apple configuration:")
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, rule)
	fmt.Fprintln(a.stdout, "Client ID:")
	fmt.Fprintf(a.stdout, "  %s\n\n", p.ClientID)
	fmt.Fprintln(a.stdout, "Secret Key (for OAuth):")
	fmt.Fprintf(a.stdout, "  %s\n\n", secret)
	fmt.Fprintf(a.stdout, "Expires: %s (%s)\n", exp.Format("2006-01-02"), humanize.RelTime(exp, now, "ago", "from now"))
	fmt.Fprintln(a.stdout, "Generate a new secret before it expires and keep it private.")
	fmt.Fprintln(a.stdout, rule)
	return 0
}
