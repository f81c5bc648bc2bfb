package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"managesalary/internal/domain/record"
	"managesalary/internal/shared/handlers"
)

const recordsUsage = `Usage: salary records <list|add|edit|rm> [options]

Examples:
  salary records list --from=2024-01-01 --to=2024-01-31 --type=out
  salary records list --all
  salary records add --type=out --amount=19.99 --tag=<tag-id> --description="lunch" --date=2024-01-15
  salary records edit <record-id> --amount=25.00
  salary records rm <record-id>
`

func (a *app) runRecords(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Println(recordsUsage)
		os.Exit(1)
	}

	switch args[0] {
	case "list":
		return a.recordsList(ctx, args[1:])
	case "add":
		return a.recordsAdd(ctx, args[1:])
	case "edit":
		return a.recordsEdit(ctx, args[1:])
	case "rm":
		return a.recordsRemove(ctx, args[1:])
	default:
		fmt.Printf("Unknown records command: %s\n\n", args[0])
		fmt.Println(recordsUsage)
		os.Exit(1)
		return nil
	}
}

func (a *app) recordsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("records list", flag.ExitOnError)
	page := fs.Int("page", 0, "Page index")
	limit := fs.Int("limit", 10, "Records per page")
	recordType := fs.String("type", "all", `Record type: "in", "out" or "all"`)
	tagID := fs.String("tag", "", "Filter by tag id")
	from := fs.String("from", "", "Range start (YYYY-MM-DD)")
	to := fs.String("to", "", "Range end (YYYY-MM-DD)")
	all := fs.Bool("all", false, "Fetch every page, not just one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := record.ListParams{
		Page:  *page,
		Limit: *limit,
		Type:  *recordType,
		Tag:   *tagID,
		Range: record.DateRange{From: *from, To: *to},
	}
	if err := params.Range.Validate(); err != nil {
		return err
	}

	var records []record.Record
	if *all {
		pager := a.records.NewPager(params)
		for {
			_, more, err := pager.FetchNextPage(ctx)
			if err != nil {
				return err
			}
			if !more {
				break
			}
		}
		records = pager.Records()
	} else {
		var err error
		records, err = a.records.List(ctx, params)
		if err != nil {
			return err
		}
	}

	if len(records) == 0 {
		fmt.Println("No records.")
		return nil
	}
	renderRecords(records)
	return nil
}

func renderRecords(records []record.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tAMOUNT\tTAG\tDESCRIPTION")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
			r.ID, r.Date.Format("2006-01-02"), r.Type, r.Amount, r.Tag.Name, r.Description)
	}
	w.Flush()
}

func (a *app) recordsAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("records add", flag.ExitOnError)
	recordType := fs.String("type", "", `Record type: "in" or "out"`)
	amount := fs.String("amount", "", "Amount in dollars, e.g. 19.99")
	description := fs.String("description", "", "Description")
	tagID := fs.String("tag", "", "Tag id")
	date := fs.String("date", "", "Record date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var outcome error
	a.records.Create(ctx, record.CreateParams{
		Type:        *recordType,
		Amount:      *amount,
		Description: *description,
		Tag:         *tagID,
		Date:        *date,
	}, handlers.Fn{
		OnSuccess: func() { fmt.Println("Record created.") },
		OnError:   func(err error) { outcome = err },
	})
	return outcome
}

func (a *app) recordsEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("records edit", flag.ExitOnError)
	recordType := fs.String("type", "", `New type: "in" or "out"`)
	amount := fs.String("amount", "", "New amount in dollars")
	description := fs.String("description", "", "New description")
	tagID := fs.String("tag", "", "New tag id")
	date := fs.String("date", "", "New date (YYYY-MM-DD)")

	id, rest, err := splitID(args, "records edit <record-id> [options]")
	if err != nil {
		return err
	}
	if err := fs.Parse(rest); err != nil {
		return err
	}

	params := record.UpdateParams{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			params.Type = recordType
		case "amount":
			params.Amount = amount
		case "description":
			params.Description = description
		case "tag":
			params.Tag = tagID
		case "date":
			params.Date = date
		}
	})

	var outcome error
	a.records.Update(ctx, id, params, handlers.Fn{
		OnSuccess: func() { fmt.Println("Record updated.") },
		OnError:   func(err error) { outcome = err },
	})
	return outcome
}

func (a *app) recordsRemove(ctx context.Context, args []string) error {
	id, _, err := splitID(args, "records rm <record-id>")
	if err != nil {
		return err
	}

	var outcome error
	a.records.Remove(ctx, id, handlers.Fn{
		OnSuccess: func() { fmt.Println("Record deleted.") },
		OnError:   func(err error) { outcome = err },
	})
	return outcome
}

// splitID pulls the positional id off the front of a subcommand's arguments.
func splitID(args []string, usageLine string) (string, []string, error) {
	if len(args) == 0 || args[0] == "" || args[0][0] == '-' {
		return "", nil, fmt.Errorf("usage: salary %s", usageLine)
	}
	return args[0], args[1:], nil
}
