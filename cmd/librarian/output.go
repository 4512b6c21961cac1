package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returninstance"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/authors"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/bookcatalog"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/bookinstances"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/instanceavailability"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/overdueloans"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/readerloans"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/registeredreaders"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/udkcodes"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/config"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// message is a plain confirmation for operations without a result record.
type message struct {
	Message string
}

// render writes v as an indented JSON document or as an aligned table.
func render(w io.Writer, format string, v any) error {
	if format == config.OutputJSON {
		encoder := jsonAPI.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(v)
	}

	header, rows, footer := tableOf(v)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(header) > 0 {
		_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))
	}

	for _, row := range rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if footer != "" {
		_, err := fmt.Fprintln(w, footer)
		return err
	}

	return nil
}

//nolint:funlen
func tableOf(v any) (header []string, rows [][]string, footer string) {
	switch r := v.(type) {
	case message:
		return nil, nil, r.Message

	case core.Author:
		return authorHeader, [][]string{authorRow(r)}, ""

	case authors.Authors:
		for _, a := range r.Authors {
			rows = append(rows, authorRow(a))
		}
		return authorHeader, rows, countFooter(r.Count, "author")

	case core.UDKCode:
		return udkHeader, [][]string{udkRow(r)}, ""

	case udkcodes.UDKCodes:
		for _, c := range r.Codes {
			rows = append(rows, udkRow(c))
		}
		return udkHeader, rows, countFooter(r.Count, "code")

	case core.Reader:
		return readerHeader, [][]string{readerRow(r)}, ""

	case registeredreaders.RegisteredReaders:
		for _, reader := range r.Readers {
			rows = append(rows, readerRow(reader))
		}
		return readerHeader, rows, countFooter(r.Count, "reader")

	case core.Book:
		return bookHeader, [][]string{bookRow(r)}, ""

	case addbook.Result:
		for _, instance := range r.Instances {
			rows = append(rows, instanceRow(instance))
		}
		return instanceHeader, rows, fmt.Sprintf("added book %d %q with %s", r.Book.ID, r.Book.Title, plural(len(r.Instances), "instance"))

	case core.BookInstance:
		return instanceHeader, [][]string{instanceRow(r)}, ""

	case bookinstances.BookInstances:
		for _, i := range r.Instances {
			rows = append(rows, []string{id(i.InstanceID), id(r.BookID), i.InventoryNumber, string(i.Status), date(i.AcquisitionDate)})
		}
		return instanceHeader, rows, fmt.Sprintf("%q: %s", r.Title, plural(r.Count, "instance"))

	case instanceavailability.Availability:
		return []string{"BOOK", "AVAILABLE", "TOTAL"},
			[][]string{{id(r.BookID), strconv.Itoa(r.Available), strconv.Itoa(r.Total)}}, ""

	case bookcatalog.Catalog:
		for _, b := range r.Books {
			rows = append(rows, []string{
				id(b.BookID), b.Title, year(b.Year), b.Authors, b.UDKCode,
				fmt.Sprintf("%d/%d", b.Available, b.Total),
			})
		}
		return []string{"ID", "TITLE", "YEAR", "AUTHORS", "UDK", "AVAILABLE"}, rows, countFooter(r.Count, "book")

	case core.Loan:
		return loanHeader, [][]string{loanRow(r)}, ""

	case returninstance.Outcome:
		return loanHeader, [][]string{loanRow(r.Loan)}, returnSummary(r.Return)

	case readerloans.ReaderLoans:
		for _, l := range r.Loans {
			rows = append(rows, []string{
				id(l.LoanID), l.Title, l.InventoryNumber, date(l.IssueDate), date(l.PlannedReturnDate),
				optionalDate(l.ActualReturnDate), string(l.Status), readerLoanState(l),
			})
		}
		return []string{"LOAN", "TITLE", "INVENTORY", "ISSUED", "PLANNED", "RETURNED", "STATUS", "STATE"},
			rows, fmt.Sprintf("%s: %d active of %s", r.ReaderName, r.ActiveCount, plural(r.Count, "loan"))

	case overdueloans.OverdueLoans:
		for _, l := range r.Loans {
			rows = append(rows, []string{
				id(l.LoanID), l.Title, l.InventoryNumber, l.ReaderName, l.ReaderPhone,
				date(l.PlannedReturnDate), string(l.Status), strconv.Itoa(l.DaysLeft),
			})
		}
		return []string{"LOAN", "TITLE", "INVENTORY", "READER", "PHONE", "PLANNED", "STATUS", "DAYS LEFT"},
			rows, fmt.Sprintf("%d overdue, %d due soon", r.OverdueCount, r.WarningCount)

	default:
		return nil, nil, fmt.Sprintf("%+v", v)
	}
}

var (
	authorHeader   = []string{"ID", "NAME"}
	udkHeader      = []string{"ID", "CODE", "DESCRIPTION"}
	readerHeader   = []string{"ID", "NAME", "PHONE", "ADDRESS", "BIRTH DATE", "REGISTERED"}
	bookHeader     = []string{"ID", "TITLE", "YEAR", "UDK", "DESCRIPTION"}
	instanceHeader = []string{"ID", "BOOK", "INVENTORY", "STATUS", "ACQUIRED"}
	loanHeader     = []string{"LOAN", "INSTANCE", "READER", "ISSUED", "PLANNED", "RETURNED", "STATUS"}
)

func authorRow(a core.Author) []string {
	return []string{id(a.ID), a.FullName}
}

func udkRow(c core.UDKCode) []string {
	return []string{id(c.ID), c.Code, c.Description}
}

func readerRow(r core.Reader) []string {
	return []string{id(r.ID), r.FullName, r.Phone, r.Address, date(r.BirthDate), date(r.RegistrationDate)}
}

func bookRow(b core.Book) []string {
	udk := ""
	if b.UDKID != nil {
		udk = id(*b.UDKID)
	}

	return []string{id(b.ID), b.Title, year(b.Year), udk, b.Description}
}

func instanceRow(i core.BookInstance) []string {
	return []string{id(i.ID), id(i.BookID), i.InventoryNumber, string(i.Status), date(i.AcquisitionDate)}
}

func loanRow(l core.Loan) []string {
	return []string{
		id(l.ID), id(l.InstanceID), id(l.ReaderID), date(l.IssueDate), date(l.PlannedReturnDate),
		optionalDate(l.ActualReturnDate), string(l.Status),
	}
}

func readerLoanState(l readerloans.LoanInfo) string {
	switch {
	case l.Due != nil:
		return fmt.Sprintf("%s (%d days left)", l.Due.Status, l.Due.DaysLeft)
	case l.Return != nil:
		return returnSummary(*l.Return)
	default:
		return ""
	}
}

func returnSummary(r core.ReturnClassification) string {
	switch r.Timing {
	case core.ReturnedEarly:
		return fmt.Sprintf("returned %s early", plural(r.Days, "day"))
	case core.ReturnedLate:
		return fmt.Sprintf("returned %s late", plural(r.Days, "day"))
	default:
		return "returned on time"
	}
}

func countFooter(count int, noun string) string {
	return plural(count, noun)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func year(y int) string {
	if y == 0 {
		return ""
	}

	return strconv.Itoa(y)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(core.DateLayout)
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return date(*t)
}
