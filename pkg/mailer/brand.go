package mailer

// Brand is the look of every outgoing mail.
type Brand struct {
	Name         string
	URL          string
	From         string
	PrimaryColor string
	TextColor    string
	SuccessColor string
	DangerColor  string
	Footer       string
}

func DefaultBrand() Brand {
	return Brand{
		Name:         "Show Royal Meal",
		URL:          "https://showroyalmeal.com",
		From:         "Show Royal Meal <no-reply@showroyalmeal.com>",
		PrimaryColor: "#FF6347",
		TextColor:    "#333333",
		SuccessColor: "#28a745",
		DangerColor:  "#dc3545",
		Footer:       "Show Royal Meal. All rights reserved.",
	}
}
