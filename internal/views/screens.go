package views

import (
	"fmt"
	"strings"
)

type HomeItemData struct {
	ID       string
	When     string
	Kind     string
	Preview  string
	Past     bool
	Cursor   bool
	Selected bool
	ShowBox  bool
}

type HomeData struct {
	Upcoming   int
	Items      []HomeItemData
	EmptyTitle string
	EmptyDesc  string
}

func RenderHome(data HomeData) string {
	if len(data.Items) == 0 {
		return fmt.Sprintf("%s\n%s", data.EmptyTitle, data.EmptyDesc)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "upcoming: %d\n", data.Upcoming)
	for _, item := range data.Items {
		marker := "  "
		if item.Cursor {
			marker = "> "
		}
		box := ""
		if item.ShowBox {
			if item.Selected {
				box = "[x] "
			} else {
				box = "[ ] "
			}
		}
		state := " "
		if item.Past {
			state = "*"
		}
		fmt.Fprintf(&b, "%s%s%s %-6s %s  %s\n", marker, box, state, item.Kind, item.When, item.Preview)
	}
	return strings.TrimRight(b.String(), "\n")
}

type AlertData struct {
	Title   string
	When    string
	Kind    string
	Content string
	Hint    string
}

func RenderAlert(data AlertData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "!! %s !!\n", data.Title)
	fmt.Fprintf(&b, "when: %s\nkind: %s\n\n", data.When, data.Kind)
	b.WriteString(data.Content)
	if data.Hint != "" {
		b.WriteString("\n\n" + data.Hint)
	}
	return b.String()
}

type ComposeData struct {
	Title     string
	WhenLabel string
	TimeView  string
	Tabs      []string
	ActiveTab int
	TabView   string
	Sync      bool
	SyncLabel string
}

func RenderCompose(data ComposeData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n\n")
	fmt.Fprintf(&b, "%s %s\n\n", data.WhenLabel, data.TimeView)
	for i, tab := range data.Tabs {
		if i == data.ActiveTab {
			fmt.Fprintf(&b, "[%s] ", tab)
		} else {
			fmt.Fprintf(&b, " %s  ", tab)
		}
	}
	b.WriteString("\n\n" + data.TabView + "\n\n")
	box := "[ ]"
	if data.Sync {
		box = "[x]"
	}
	fmt.Fprintf(&b, "%s %s", box, data.SyncLabel)
	return b.String()
}
