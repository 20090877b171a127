package domain

// MaskedValue replaces secrets wherever a request is rendered.
const MaskedValue = "***"

// OverviewField is one labelled line of a request summary.
type OverviewField struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Overview summarizes a request for display. The cipher key is listed only when
// present and always as MaskedValue.
func Overview(r *Request) []OverviewField {
	input := r.Input
	if input == "" {
		input = "--"
	}

	mode := "Hash: " + r.Algorithm()
	if r.Mode() == ModeCipher {
		mode = "Cipher: " + r.CipherAlgorithm
	}

	fields := []OverviewField{
		{Label: "Input", Text: input},
		{Label: "Mode", Text: mode},
	}
	if r.CipherKey != "" {
		fields = append(fields, OverviewField{Label: "Cipher Key", Text: MaskedValue})
	}
	return fields
}
