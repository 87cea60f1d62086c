package display

import (
	"fmt"

	"github.com/pterm/pterm"
)

// RuleRow is one line of the rules table
type RuleRow struct {
	Name      string
	Directory string
	Strategy  string
	Keep      string
	Exists    bool
}

// RulesTable prints the configured rules as a table
func (p *Presenter) RulesTable(rows []RuleRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, "No rules configured")
		return nil
	}

	t := p.outTheme
	data := pterm.TableData{{"Name", "Directory", "Strategy", "Keep", "Exists"}}
	for _, row := range rows {
		exists := t.Render("Ok", "yes")
		if !row.Exists {
			exists = t.Render("Missing", "no")
		}
		data = append(data, []string{row.Name, row.Directory, row.Strategy, row.Keep, exists})
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithData(data)
	if t.Color() {
		table = table.WithHeaderStyle(pterm.NewStyle(pterm.FgBlue, pterm.Bold))
	} else {
		table = table.
			WithHeaderStyle(pterm.NewStyle()).
			WithSeparatorStyle(pterm.NewStyle())
	}

	rendered, err := table.Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, rendered)
	return nil
}
