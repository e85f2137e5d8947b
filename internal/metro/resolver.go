package metro

import "strings"

// Resolve converts user input into a station code. It tries, in order, an
// exact display name, a station code in any case, and finally the first
// station in directory order whose name contains the input case-insensitively.
func (d *Directory) Resolve(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	if code, ok := d.byName[text]; ok {
		return code, true
	}

	if len(text) <= 3 {
		code := strings.ToUpper(text)
		if _, ok := d.byID[code]; ok {
			return code, true
		}
	}

	needle := strings.ToLower(text)
	for _, s := range d.stations {
		name := strings.ToLower(s.Name)
		if strings.Contains(name, needle) || strings.HasPrefix(name, needle) {
			return s.ID, true
		}
	}

	return "", false
}
