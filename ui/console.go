// Package ui provides a console ViewSync used by the hub binary. It is
// one possible view collaborator; the manager never knows which one it
// talks to.
package ui

import (
	"chathub/domain"
	"fmt"
	"io"
	"sort"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// ConsoleView renders pushed view state as plain tables. It keeps no
// state of its own beyond the output writer: the manager computes, the
// view prints.
type ConsoleView struct {
	out io.Writer
}

func NewConsoleView(out io.Writer) *ConsoleView {
	return &ConsoleView{out: out}
}

func (v *ConsoleView) Initialize(providers []domain.ProviderID, teams map[domain.ProviderID][]domain.Team) {
	color.Fprintf(v.out, "<cyan>Enabled providers:</> %v\n", providers)
	for _, p := range providers {
		for _, t := range teams[p] {
			fmt.Fprintf(v.out, "  %s: %s (%s)\n", p, t.Name, t.ID)
		}
	}
}

func (v *ConsoleView) UpdateWebview(currentUser domain.CurrentUser, provider domain.ProviderID,
	users map[string]domain.User, channel domain.Channel, messages domain.ChannelMessages) {
	color.Fprintf(v.out, "<cyan>[%s]</> %s — %d message(s)\n", provider, channel.Label(), len(messages))

	timestamps := make([]string, 0, len(messages))
	for ts := range messages {
		timestamps = append(timestamps, ts)
	}
	sort.Strings(timestamps)

	table := tablewriter.NewWriter(v.out)
	table.SetHeader([]string{"Time", "Who", "Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, ts := range timestamps {
		m := messages[ts]
		who := m.UserID
		if u, ok := users[m.UserID]; ok {
			who = presenceDot(u.Presence) + " " + u.Name
		}
		table.Append([]string{ts, who, m.Text})
	}
	table.Render()
}

func (v *ConsoleView) UpdateStatusItem(provider domain.ProviderID, team domain.Team) {
	if team.Name == "" {
		return
	}
	color.Fprintf(v.out, "<gray>status</> %s | %s\n", provider, team.Name)
}

func (v *ConsoleView) UpdateTreeViews(provider domain.ProviderID) {
	color.Fprintf(v.out, "<gray>tree</> refresh %s\n", provider)
}

func presenceDot(p domain.Presence) string {
	switch p {
	case domain.PresenceActive:
		return color.Green.Sprint("●")
	case domain.PresenceAway:
		return color.Yellow.Sprint("●")
	case domain.PresenceDnd:
		return color.Red.Sprint("●")
	default:
		return color.Gray.Sprint("○")
	}
}
