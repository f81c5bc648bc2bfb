package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"managesalary/internal/domain/apikey"
	"managesalary/internal/shared/handlers"
)

const apikeysUsage = `Usage: salary apikeys <list|add|update|rm> [options]

Examples:
  salary apikeys list
  salary apikeys add --name=ci --permissions=create_records --expires=2025-06-01
  salary apikeys update <key-id> --active=false
  salary apikeys rm <key-id>
`

func (a *app) runAPIKeys(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Println(apikeysUsage)
		os.Exit(1)
	}

	switch args[0] {
	case "list":
		return a.apikeysList(ctx, args[1:])
	case "add":
		return a.apikeysAdd(ctx, args[1:])
	case "update":
		return a.apikeysUpdate(ctx, args[1:])
	case "rm":
		return a.apikeysRemove(ctx, args[1:])
	default:
		fmt.Printf("Unknown apikeys command: %s\n\n", args[0])
		fmt.Println(apikeysUsage)
		os.Exit(1)
		return nil
	}
}

func (a *app) apikeysList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apikeys list", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	keys, err := a.keys.List(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Println("No API keys.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPERMISSIONS\tEXPIRES\tACTIVE")
	for _, k := range keys {
		expires := "never"
		if !k.ExpiresAt.IsZero() {
			expires = k.ExpiresAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
			k.ID, k.Name, strings.Join(k.Permissions, ","), expires, k.Active)
	}
	return w.Flush()
}

func (a *app) apikeysAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apikeys add", flag.ExitOnError)
	name := fs.String("name", "", "Key name")
	permissions := fs.String("permissions", "", "Comma-separated permissions, e.g. create_records")
	expires := fs.String("expires", "", "Expiry date (YYYY-MM-DD), empty for never")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := apikey.CreateParams{Name: *name, ExpiresAt: *expires}
	if *permissions != "" {
		params.Permissions = strings.Split(*permissions, ",")
	}

	var outcome error
	a.keys.Create(ctx, params, handlers.FnOf[apikey.Created]{
		OnSuccess: func(created apikey.Created) {
			fmt.Println("API key created. The secret is shown once; store it now.")
			fmt.Printf("Secret: %s\n", created.Secret)
		},
		OnError: func(err error) { outcome = err },
	})
	return outcome
}

func (a *app) apikeysUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apikeys update", flag.ExitOnError)
	permissions := fs.String("permissions", "", "New comma-separated permissions")
	expires := fs.String("expires", "", "New expiry date (YYYY-MM-DD)")
	active := fs.Bool("active", true, "Whether the key is active")

	id, rest, err := splitID(args, "apikeys update <key-id> [options]")
	if err != nil {
		return err
	}
	if err := fs.Parse(rest); err != nil {
		return err
	}

	params := apikey.UpdateParams{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "permissions":
			params.Permissions = strings.Split(*permissions, ",")
		case "expires":
			params.ExpiresAt = expires
		case "active":
			params.Active = active
		}
	})

	var outcome error
	a.keys.Update(ctx, id, params, handlers.Fn{
		OnSuccess: func() { fmt.Println("API key updated.") },
		OnError:   func(err error) { outcome = err },
	})
	return outcome
}

func (a *app) apikeysRemove(ctx context.Context, args []string) error {
	id, _, err := splitID(args, "apikeys rm <key-id>")
	if err != nil {
		return err
	}

	var outcome error
	a.keys.Remove(ctx, id, handlers.Fn{
		OnSuccess: func() { fmt.Println("API key deactivated.") },
		OnError:   func(err error) { outcome = err },
	})
	return outcome
}
