package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minho-song/kitdex/internal/config"
	"github.com/minho-song/kitdex/internal/output"
	"github.com/minho-song/kitdex/internal/session"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List kits with optional filters",
	Long: `List catalog kits with optional multi-category filters.

When any filter or query is active, results are ranked by their weighted
match score. Without filters the catalog order (or --sort) is used.

Examples:
  kitdex list                                  # Full catalog
  kitdex list --grade=HG,RG --difficulty=beginner
  kitdex list --mobility=3-5 --query=gundam
  kitdex list --sort=price --page=2
  kitdex list --grade=MG --state                # Print the shareable state string`,
	RunE: runList,
}

var (
	listQuery      string
	listGrade      string
	listSeries     string
	listDifficulty string
	listWeapons    string
	listMobility   string
	listPrice      string
	listLED        string
	listSort       string
	listPage       int
	listLimit      int
	listShowState  bool
	listFromState  string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Free-text search query")
	listCmd.Flags().StringVar(&listGrade, "grade", "", "Grades, comma separated (e.g. HG,MG)")
	listCmd.Flags().StringVar(&listSeries, "series", "", "Series names, comma separated")
	listCmd.Flags().StringVar(&listDifficulty, "difficulty", "", "Difficulty levels, comma separated")
	listCmd.Flags().StringVar(&listWeapons, "weapons", "", "Weapon count buckets, comma separated")
	listCmd.Flags().StringVar(&listMobility, "mobility", "", "Mobility range as min-max (e.g. 3-5)")
	listCmd.Flags().StringVar(&listPrice, "price", "", "Price range as min-max (e.g. 10-50)")
	listCmd.Flags().StringVar(&listLED, "led", "", "LED unit filter (true or false)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort without filters (name, price, year)")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Kits per page (default from config)")
	listCmd.Flags().BoolVar(&listShowState, "state", false, "Print the serialized filter state")
	listCmd.Flags().StringVar(&listFromState, "from-state", "", "Restore filters from a serialized state string")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	if listFromState != "" {
		if err := sess.Restore(listFromState); err != nil {
			return fmt.Errorf("invalid state string: %w", err)
		}
	}

	if err := applyListFlags(sess); err != nil {
		return err
	}

	if listShowState {
		fmt.Println(sess.QueryString())
		return nil
	}

	limit := listLimit
	if limit <= 0 {
		limit = cfg.Catalog.PageSize
	}

	page := sess.Results(session.Options{
		Sort:    listSort,
		Page:    listPage,
		PerPage: limit,
	})

	scored := sess.State().Active()
	rows := output.KitRows(page.Items, cfg.Catalog.Locale, scored)

	if err := output.Output(outputFmt, rows); err != nil {
		return err
	}

	if outputFmt != "json" && page.TotalPages > 1 {
		fmt.Printf("\nPage %d of %d (%d kits)\n", page.Page, page.TotalPages, page.Total)
	}
	return nil
}

func applyListFlags(sess *session.Session) error {
	if listQuery != "" {
		sess.SetQuery(listQuery)
	}

	enums := map[string]string{
		"grade":       listGrade,
		"series":      listSeries,
		"difficulty":  listDifficulty,
		"weaponCount": listWeapons,
	}
	for id, raw := range enums {
		if raw == "" {
			continue
		}
		sess.SetEnum(id, splitCSV(raw))
	}

	ranges := map[string]string{
		"mobility": listMobility,
		"price":    listPrice,
	}
	for id, raw := range ranges {
		if raw == "" {
			continue
		}
		min, max, err := parseRangeFlag(raw)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", id, err)
		}
		sess.SetRange(id, min, max)
	}

	if listLED != "" {
		switch strings.ToLower(listLED) {
		case "true", "yes":
			sess.SetBool("ledUnit", true)
		case "false", "no":
			sess.SetBool("ledUnit", false)
		default:
			return fmt.Errorf("invalid --led: %q (use true or false)", listLED)
		}
	}

	return nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseRangeFlag(raw string) (float64, float64, error) {
	lo, hi, found := strings.Cut(raw, "-")
	if !found {
		return 0, 0, fmt.Errorf("expected min-max, got %q", raw)
	}

	var min, max float64
	if _, err := fmt.Sscanf(strings.TrimSpace(lo), "%g", &min); err != nil {
		return 0, 0, fmt.Errorf("bad minimum %q", lo)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(hi), "%g", &max); err != nil {
		return 0, 0, fmt.Errorf("bad maximum %q", hi)
	}
	if min > max {
		return 0, 0, fmt.Errorf("minimum %g greater than maximum %g", min, max)
	}
	return min, max, nil
}
