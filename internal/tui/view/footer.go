package view

import "github.com/Iron-Ham/tally/internal/tui/styles"

// FooterText closes every screen.
const FooterText = "Keep tracking your progress!"

// RenderFooter renders the footer line.
func RenderFooter(s *styles.Styles, width int) string {
	return s.Footer.Render(truncate(FooterText, width))
}
