package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"music-storefront/internal/domain"
)

var (
	colorTitle  = lipgloss.Color("#58a6ff")
	colorAuthor = lipgloss.Color("#3fb950")
	colorDim    = lipgloss.Color("#8b949e")
	colorMore   = lipgloss.Color("#d29922")
)

type treePrinter struct {
	title  lipgloss.Style
	author lipgloss.Style
	branch lipgloss.Style
	more   lipgloss.Style
}

func newTreePrinter(color bool) *treePrinter {
	if !color {
		return &treePrinter{
			title:  lipgloss.NewStyle(),
			author: lipgloss.NewStyle(),
			branch: lipgloss.NewStyle(),
			more:   lipgloss.NewStyle(),
		}
	}
	return &treePrinter{
		title:  lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
		author: lipgloss.NewStyle().Foreground(colorAuthor),
		branch: lipgloss.NewStyle().Foreground(colorDim),
		more:   lipgloss.NewStyle().Italic(true).Foreground(colorMore),
	}
}

func (p *treePrinter) Render(productID string, total int, forest []*domain.CommentNode) string {
	var b strings.Builder
	b.WriteString(p.title.Render(fmt.Sprintf("product %s: %d comments", productID, total)))

	if len(forest) == 0 {
		b.WriteString("\n")
		b.WriteString(p.branch.Render("(no comments)"))
		return b.String()
	}

	for i, node := range forest {
		p.renderNode(&b, node, "", i == len(forest)-1)
	}
	return b.String()
}

func (p *treePrinter) renderNode(b *strings.Builder, node *domain.CommentNode, prefix string, last bool) {
	connector, indent := "├── ", "│   "
	if last {
		connector, indent = "└── ", "    "
	}

	b.WriteString("\n")
	b.WriteString(p.branch.Render(prefix + connector))
	b.WriteString(p.line(node))

	for i, child := range node.Children {
		p.renderNode(b, child, prefix+indent, i == len(node.Children)-1)
	}
}

func (p *treePrinter) line(node *domain.CommentNode) string {
	author := "user " + node.UserID.String()
	if node.User != nil && node.User.Name != "" {
		author = node.User.Name
	}

	content := strings.Join(strings.Fields(node.Content), " ")
	text := fmt.Sprintf("#%s %s: %s", node.ID, p.author.Render(author), content)
	if node.HasMoreChildren {
		text += " " + p.more.Render("+ more")
	}
	return text
}
