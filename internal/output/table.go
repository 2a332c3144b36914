package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"

	"github.com/minho-song/kitdex/internal/catalog"
	"github.com/minho-song/kitdex/internal/session"
)

// KitRow is one row of the kit list view
type KitRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Grade  string `json:"grade"`
	Series string `json:"series"`
	Price  string `json:"price,omitempty"`
	Year   string `json:"year,omitempty"`
	Score  int    `json:"score"`
	Scored bool   `json:"-"`
}

// KitRows flattens a result page for display
func KitRows(items []session.ScoredProduct, locale string, scored bool) []KitRow {
	rows := make([]KitRow, 0, len(items))
	for _, item := range items {
		p := item.Product
		row := KitRow{
			ID:     p.ID,
			Name:   p.Name(locale),
			Grade:  p.Grade,
			Series: p.Series,
			Score:  item.Score,
			Scored: scored,
		}
		if p.Price != nil {
			row.Price = fmt.Sprintf("%.2f", *p.Price)
		}
		if p.ReleaseYear != nil {
			row.Year = strconv.Itoa(*p.ReleaseYear)
		}
		rows = append(rows, row)
	}
	return rows
}

// FavoriteRow is one row of the favorites view
type FavoriteRow struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	AddedAt   string `json:"added_at"`
}

// CompareView is the side-by-side compare matrix: one column per kit,
// one row per attribute.
type CompareView struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// KitDetail is the detail view of one product
type KitDetail struct {
	Product *catalog.Product `json:"product"`
	Locale  string           `json:"-"`
	IsFav   bool             `json:"is_favorite"`
}

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []KitRow:
		return kitsTable(w, v)
	case *KitDetail:
		return kitDetail(w, v)
	case []FavoriteRow:
		return favoritesTable(w, v)
	case *CompareView:
		return compareTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func kitsTable(w io.Writer, rows []KitRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No kits found.")
		return nil
	}

	scored := rows[0].Scored

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if scored {
		fmt.Fprintln(tw, "ID\tNAME\tGRADE\tSERIES\tPRICE\tMATCH")
		fmt.Fprintln(tw, "--\t----\t-----\t------\t-----\t-----")
	} else {
		fmt.Fprintln(tw, "ID\tNAME\tGRADE\tSERIES\tPRICE\tYEAR")
		fmt.Fprintln(tw, "--\t----\t-----\t------\t-----\t----")
	}

	for _, r := range rows {
		last := r.Year
		if scored {
			last = fmt.Sprintf("%d%%", r.Score)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(r.ID, 24),
			truncate(r.Name, 32),
			r.Grade,
			truncate(r.Series, 24),
			r.Price,
			last,
		)
	}

	return tw.Flush()
}

func kitDetail(w io.Writer, d *KitDetail) error {
	p := d.Product

	fmt.Fprintf(w, "Name:     %s\n", p.Name(d.Locale))
	fmt.Fprintf(w, "ID:       %s\n", p.ID)
	if p.ModelNumber != "" {
		fmt.Fprintf(w, "Model:    %s\n", p.ModelNumber)
	}
	fmt.Fprintf(w, "Grade:    %s\n", p.Grade)
	if p.Scale != "" {
		fmt.Fprintf(w, "Scale:    %s\n", p.Scale)
	}
	fmt.Fprintf(w, "Series:   %s\n", p.Series)
	if p.Price != nil {
		fmt.Fprintf(w, "Price:    %.2f\n", *p.Price)
	}
	if p.ReleaseYear != nil {
		fmt.Fprintf(w, "Released: %d\n", *p.ReleaseYear)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "Tags:     %s\n", strings.Join(p.Tags, ", "))
	}
	if d.IsFav {
		fmt.Fprintln(w, "Saved:    yes")
	}
	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}
	if len(p.Accessories) > 0 {
		fmt.Fprintln(w, "\nIncluded:")
		for _, a := range p.Accessories {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}

	return nil
}

func favoritesTable(w io.Writer, rows []FavoriteRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No favorites yet. Save one with 'kitdex fav add <id>'.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tADDED")
	fmt.Fprintln(tw, "--\t----\t-----")

	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", truncate(r.ProductID, 24), truncate(r.Name, 32), r.AddedAt)
	}

	return tw.Flush()
}

func compareTable(w io.Writer, v *CompareView) error {
	if len(v.Headers) <= 1 {
		fmt.Fprintln(w, "Compare list is empty. Add kits with 'kitdex compare add <id>'.")
		return nil
	}

	table := tablewriter.NewWriter(w)

	header := make([]any, len(v.Headers))
	for i, h := range v.Headers {
		header[i] = h
	}
	table.Header(header...)

	for _, row := range v.Rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

// truncate shortens a string to maxLen characters with an ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
