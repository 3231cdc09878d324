package chrome

// Footer is the shared footer content block.
type Footer struct {
	BenefitsTitle string   `json:"benefitsTitle"`
	Benefits      []string `json:"benefits"`
}

// SiteFooter returns the footer content rendered on every page.
func SiteFooter() Footer {
	return Footer{
		BenefitsTitle: "Our Benefits",
		Benefits: []string{
			"Velit nisl sodales eget donec quis. volutpat orci.",
			"Dolor eu varius. Morbi fermentum velit nisl.",
			"Malesuada fames ac ante ipsum primis in faucibus.",
			"Nisl sodales eget donec quis, volutpat orci.",
		},
	}
}
