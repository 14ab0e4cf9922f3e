package parser

import "strconv"

func parseUint(text string) (uint64, error) {
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, newParseError("invalid integer literal %q: %s", text, err)
	}
	return v, nil
}

func parseInt(text string) (int64, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, newParseError("invalid integer literal %q: %s", text, err)
	}
	return v, nil
}

func parseFloat(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, newParseError("invalid float literal %q: %s", text, err)
	}
	return v, nil
}
