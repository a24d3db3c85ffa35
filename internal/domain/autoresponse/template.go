package autoresponse

import "strings"

// RenderData carries the values substituted into a template's placeholder
// tokens when an auto-reply is sent.
type RenderData struct {
	ClientName   string
	Date         string
	Time         string
	BookingLink  string
	BusinessName string
}

// Render substitutes the placeholder tokens of a template body. Tokens
// without a value, like unknown tokens, are left untouched so a half-filled
// template never reads as a sentence with holes in it.
func Render(content string, data RenderData) string {
	tokens := []struct {
		token string
		value string
	}{
		{"{client}", data.ClientName},
		{"{date}", data.Date},
		{"{time}", data.Time},
		{"{booking_link}", data.BookingLink},
		{"{business_name}", data.BusinessName},
	}

	pairs := make([]string, 0, len(tokens)*2)
	for _, t := range tokens {
		if t.value == "" {
			continue
		}
		pairs = append(pairs, t.token, t.value)
	}

	return strings.NewReplacer(pairs...).Replace(content)
}
