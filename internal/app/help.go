package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/theme"
)

// Help overlay geometry. The box is sized for the widest category so it
// never changes shape when tabs switch or a search narrows the rows.
const (
	helpBoxWidth    = 85
	helpVisibleRows = 15
)

// HelpBinding is one key-to-action row in the help overlay.
type HelpBinding struct {
	Action      string
	Keys        []string
	Description string
	Category    string
}

// HelpCategory groups bindings under one tab.
type HelpCategory struct {
	Name     string
	Bindings []HelpBinding
}

// GetHelpCategories builds the tab list from the keybind registry, so
// remapped keys show up under their action. leader is the configured
// prefix key, shown on the prefix tab. Categories with no bound action
// are left out.
func GetHelpCategories(registry *config.KeybindRegistry, leader string) []HelpCategory {
	all := []HelpCategory{
		{Name: "Windows", Bindings: registryBindings(registry, "Windows", []string{
			"new_window", "close_window", "rename_window",
			"minimize_window", "restore_all", "toggle_maximize",
			"next_window", "prev_window",
		})},
		{Name: "Focus", Bindings: focusBindings(registry)},
		{Name: "Layout", Bindings: registryBindings(registry, "Layout", []string{
			"arrange_cascade", "arrange_tile", "arrange_stack",
			"preset_picker",
			"move_left", "move_right", "move_up", "move_down",
			"grow_width", "shrink_width", "grow_height", "shrink_height",
		})},
		{Name: "Panels", Bindings: registryBindings(registry, "Panels", []string{
			"toggle_lock", "toggle_collapse",
			"dock_left", "dock_right", "dock_bottom", "undock",
		})},
		{Name: "System", Bindings: registryBindings(registry, "System", []string{
			"toggle_help", "toggle_logs", "toggle_taskbar", "quit",
		})},
		{Name: "Prefix", Bindings: prefixBindings(leader)},
	}

	categories := all[:0]
	for _, cat := range all {
		if len(cat.Bindings) > 0 {
			categories = append(categories, cat)
		}
	}
	return categories
}

func registryBindings(registry *config.KeybindRegistry, category string, actions []string) []HelpBinding {
	var bindings []HelpBinding
	for _, action := range actions {
		keys := registry.GetKeys(action)
		if len(keys) == 0 {
			continue
		}
		desc := config.ActionDescriptions[action]
		if desc == "" {
			desc = titleizeAction(action)
		}
		bindings = append(bindings, HelpBinding{
			Action:      action,
			Keys:        keys,
			Description: desc,
			Category:    category,
		})
	}
	return bindings
}

func focusBindings(registry *config.KeybindRegistry) []HelpBinding {
	var bindings []HelpBinding
	for i := 1; i <= 9; i++ {
		action := fmt.Sprintf("select_window_%d", i)
		keys := registry.GetKeys(action)
		if len(keys) == 0 {
			continue
		}
		bindings = append(bindings, HelpBinding{
			Action:      action,
			Keys:        keys,
			Description: fmt.Sprintf("Focus window %d", i),
			Category:    "Focus",
		})
	}
	return bindings
}

// prefixBindings lists the leader follow-ups. The follow-up keys are
// fixed; only the leader itself is remappable.
func prefixBindings(leader string) []HelpBinding {
	if leader == "" {
		leader = "ctrl+b"
	}
	var bindings []HelpBinding
	for _, b := range config.GetPrefixKeybindings() {
		bindings = append(bindings, HelpBinding{
			Action:      "prefix_" + b.Key,
			Keys:        []string{leader + ", " + b.Key},
			Description: b.Description,
			Category:    "Prefix",
		})
	}
	return bindings
}

// titleizeAction turns "toggle_lock" into "Toggle Lock" for actions with
// no configured description.
func titleizeAction(action string) string {
	parts := strings.Split(action, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// fuzzyMatch reports whether query is a subsequence of target, case
// insensitively.
func fuzzyMatch(query, target string) bool {
	query = strings.ToLower(query)
	target = strings.ToLower(target)
	qi := 0
	for i := 0; i < len(target) && qi < len(query); i++ {
		if target[i] == query[qi] {
			qi++
		}
	}
	return qi == len(query)
}

// searchBindings collects every binding whose description, keys, or action
// name fuzzy-matches the query, in category order.
func searchBindings(query string, categories []HelpCategory) []HelpBinding {
	if query == "" {
		return nil
	}
	var results []HelpBinding
	for _, cat := range categories {
		for _, b := range cat.Bindings {
			if matchesBinding(query, b) {
				results = append(results, b)
			}
		}
	}
	return results
}

func matchesBinding(query string, b HelpBinding) bool {
	if fuzzyMatch(query, b.Description) || fuzzyMatch(query, b.Action) {
		return true
	}
	for _, key := range b.Keys {
		if fuzzyMatch(query, key) {
			return true
		}
	}
	return false
}

// RenderHelpMenu draws the help overlay centered on the canvas: category
// tabs or a search line on top, a bindings table below, scroll position
// and key hints underneath. The scroll offset is clamped here because
// only the renderer knows how many rows the current view holds.
func (d *Desktop) RenderHelpMenu(width, height int) string {
	categories := GetHelpCategories(d.KeybindRegistry, d.Config.Keybindings.LeaderKey)
	d.HelpCategory = min(max(d.HelpCategory, 0), len(categories)-1)

	var bindingsTable string
	var rowCount int
	switch {
	case d.HelpSearchMode && d.HelpSearchQuery != "":
		results := searchBindings(d.HelpSearchQuery, categories)
		bindingsTable, rowCount = renderBindingRows(bindingRows(results, true), 3, d.HelpScrollOffset)
	case d.HelpSearchMode:
		bindingsTable = lipgloss.NewStyle().
			Foreground(theme.HelpGray()).
			Italic(true).
			Align(lipgloss.Center).
			Render("Type to search across all keybindings...")
	default:
		cat := categories[d.HelpCategory]
		bindingsTable, rowCount = renderBindingRows(bindingRows(cat.Bindings, false), 2, d.HelpScrollOffset)
	}

	maxScroll := max(rowCount-helpVisibleRows, 0)
	d.HelpScrollOffset = min(max(d.HelpScrollOffset, 0), maxScroll)
	scrollable := rowCount > helpVisibleRows

	center := lipgloss.NewStyle().Width(helpBoxWidth).Align(lipgloss.Center)

	// The line layout is identical in every state so the box height never
	// jumps while searching or switching tabs.
	var lines []string
	if d.HelpSearchMode {
		lines = append(lines, center.Render(renderSearchLine(d.HelpSearchQuery)), "")
	} else {
		lines = append(lines, center.Render(renderCategoryTabs(categories, d.HelpCategory)), "")
	}
	lines = append(lines, center.Render(bindingsTable))

	if scrollable {
		pos := fmt.Sprintf("Row %d-%d of %d",
			d.HelpScrollOffset+1, min(d.HelpScrollOffset+helpVisibleRows, rowCount), rowCount)
		lines = append(lines, "", center.Foreground(theme.HelpGray()).Italic(true).Render(pos))
	} else {
		lines = append(lines, "", "")
	}

	lines = append(lines, "", center.Render(helpFooter(d.HelpSearchMode, scrollable)))

	box := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// bindingRows lays bindings out as table rows, one gap row after each so
// entries read as pairs; keyboard scrolling moves in the same two-row
// steps. withCategory adds the third column for search results.
func bindingRows(bindings []HelpBinding, withCategory bool) [][]string {
	rows := make([][]string, 0, len(bindings)*2)
	for _, b := range bindings {
		row := []string{styledKeyPills(b.Keys), b.Description}
		gap := []string{"", ""}
		if withCategory {
			row = append(row, b.Category)
			gap = append(gap, "")
		}
		rows = append(rows, row, gap)
	}
	return rows
}

// renderBindingRows windows allRows to the visible page, pads short pages
// to the fixed height, and draws the bordered table. Returns the rendered
// table and the total row count for scroll math.
func renderBindingRows(allRows [][]string, columns, offset int) (string, int) {
	total := len(allRows)

	start := offset
	if start >= total {
		start = max(total-1, 0)
	}
	end := min(start+helpVisibleRows, total)

	var visible [][]string
	if start < end {
		visible = allRows[start:end]
	}
	for len(visible) < helpVisibleRows {
		visible = append(visible, make([]string, columns))
	}

	headers := []string{"Keys", "Action", "Category"}[:columns]

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HelpTableHeader()).
		Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	categoryStyle := lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.HelpGray())).
		Headers(headers...).
		Rows(visible...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 2:
				return categoryStyle
			default:
				return cellStyle
			}
		})

	return t.Render(), total
}

// styledKeyPills renders each key combo as a pill badge, the same shape
// the taskbar uses.
func styledKeyPills(keys []string) string {
	badge := theme.HelpKeyBadge()
	onBadge := theme.HelpKeyBadgeBg()

	capStyle := lipgloss.NewStyle().Foreground(badge)
	labelStyle := lipgloss.NewStyle().Background(badge).Foreground(onBadge)

	pills := make([]string, 0, len(keys))
	for _, key := range keys {
		pills = append(pills,
			capStyle.Render(config.GetTaskbarPillLeft())+
				labelStyle.Render(" "+key+" ")+
				capStyle.Render(config.GetTaskbarPillRight()))
	}
	return strings.Join(pills, " ")
}

func renderCategoryTabs(categories []HelpCategory, active int) string {
	if len(categories) == 0 {
		return ""
	}
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HelpKeyBadgeBg()).
		Background(theme.HelpTabActive()).
		Padding(0, 1)
	idleStyle := lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Padding(0, 1)

	tabs := make([]string, 0, len(categories))
	for i, cat := range categories {
		if i == active {
			tabs = append(tabs, activeStyle.Render(cat.Name))
		} else {
			tabs = append(tabs, idleStyle.Render(cat.Name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderSearchLine(query string) string {
	label := lipgloss.NewStyle().
		Foreground(theme.HelpSearchFg()).
		Render("Search: ")
	text := lipgloss.NewStyle().
		Foreground(theme.HelpSearchBg()).
		Render(query + "█")
	return label + text
}

func helpFooter(searchMode, scrollable bool) string {
	var hints []string
	if searchMode {
		hints = []string{"Type to filter", "Backspace deletes", "Esc leaves search", "? closes help"}
	} else {
		hints = []string{"←/→ switch category", "/ searches", "? closes help"}
	}
	if scrollable {
		hints = append(hints, "↑/↓ scroll")
	}
	return lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Italic(true).
		Render(strings.Join(hints, "  ·  "))
}
