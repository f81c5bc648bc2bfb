package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"managesalary/internal/domain/tag"
	"managesalary/internal/shared/handlers"
)

const tagsUsage = `Usage: salary tags <list|add|rm|info> [options]

Examples:
  salary tags list
  salary tags add --name=Food
  salary tags rm <tag-id>
  salary tags info <tag-id>
`

func (a *app) runTags(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Println(tagsUsage)
		os.Exit(1)
	}

	switch args[0] {
	case "list":
		return a.tagsList(ctx, args[1:])
	case "add":
		return a.tagsAdd(ctx, args[1:])
	case "rm":
		return a.tagsRemove(ctx, args[1:])
	case "info":
		return a.tagsInfo(ctx, args[1:])
	default:
		fmt.Printf("Unknown tags command: %s\n\n", args[0])
		fmt.Println(tagsUsage)
		os.Exit(1)
		return nil
	}
}

func (a *app) tagsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tags list", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	tags, err := a.tags.List(ctx)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Println("No tags.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCREATED")
	for _, t := range tags {
		created := ""
		if !t.CreatedAt.IsZero() {
			created = t.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Name, created)
	}
	return w.Flush()
}

func (a *app) tagsAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tags add", flag.ExitOnError)
	name := fs.String("name", "", "Tag name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var outcome error
	a.tags.Create(ctx, tag.CreateTagParams{Name: *name}, handlers.Fn{
		OnSuccess: func() { fmt.Println("Tag created.") },
		OnError:   func(err error) { outcome = err },
	})
	return outcome
}

func (a *app) tagsRemove(ctx context.Context, args []string) error {
	id, _, err := splitID(args, "tags rm <tag-id>")
	if err != nil {
		return err
	}

	var outcome error
	a.tags.Remove(ctx, id, handlers.Fn{
		OnSuccess: func() { fmt.Println("Tag deleted.") },
		OnError:   func(err error) { outcome = err },
	})
	return outcome
}

func (a *app) tagsInfo(ctx context.Context, args []string) error {
	id, _, err := splitID(args, "tags info <tag-id>")
	if err != nil {
		return err
	}

	info, err := a.tags.Info(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("Tag: %s (%s)\n\n", info.Tag.Name, info.Tag.ID)
	renderGroup("Income", info.InRecords)
	renderGroup("Expenses", info.OutRecords)
	return nil
}

func renderGroup(title string, group tag.GroupedRecords) {
	fmt.Printf("%s (total %.2f)\n", title, group.Total)
	if len(group.Records) == 0 {
		fmt.Println("  none")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range group.Records {
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%s\n", r.ID, r.Date, r.Amount, r.Description)
	}
	w.Flush()
	fmt.Println()
}
