package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nodedex/nodedex/pkg/nodejs"
)

// newBrowseCmd creates the browse command.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick a release from an interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := preloadIndex(cmd)
			if err != nil {
				return err
			}

			versions, err := idx.Versions()
			if err != nil {
				return err
			}

			// Newest first; that's what people scroll for.
			releases := make([]nodejs.Release, 0, len(versions))
			for i := len(versions) - 1; i >= 0; i-- {
				rel, err := idx.Get(versions[i])
				if err != nil {
					return err
				}
				releases = append(releases, rel)
			}

			model := newReleaseListModel(releases)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			if m, ok := final.(releaseListModel); ok && m.selected != nil {
				printRelease(*m.selected)
			}
			return nil
		},
	}
}

// releaseListModel is the bubbletea model for interactive release selection.
type releaseListModel struct {
	releases []nodejs.Release
	cursor   int
	offset   int
	height   int
	selected *nodejs.Release
}

func newReleaseListModel(releases []nodejs.Release) releaseListModel {
	return releaseListModel{
		releases: releases,
		height:   15,
	}
}

func (m releaseListModel) Init() tea.Cmd {
	return nil
}

func (m releaseListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.releases)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			rel := m.releases[m.cursor]
			m.selected = &rel
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m releaseListModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Node.js Releases"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.releases) {
		end = len(m.releases)
	}

	for i := m.offset; i < end; i++ {
		rel := m.releases[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%-10s %s", rel.Version, rel.Date.Format(time.DateOnly))
		if rel.IsLTS() {
			line += "  " + styleLTS.Render(rel.LTS)
		}

		if i == m.cursor {
			b.WriteString(cursor + styleValue.Render(line))
		} else {
			b.WriteString(cursor + styleDim.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.releases) > m.height {
		b.WriteString("\n")
		b.WriteString(styleDim.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.releases))))
		b.WriteString("\n")
	}

	return b.String()
}
