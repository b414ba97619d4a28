package util

import "strings"

// MakeTextList gives a nice list of things based on their display name, used
// for "expected X, Y, and Z" syntax-error messages. items is not modified.
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}

	output := ""

	if len(items) == 1 {
		output += items[0]
	} else if len(items) == 2 {
		output += items[0] + " and " + items[1]
	} else {
		// if its more than two, use an oxford comma
		output += strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}

	return output
}

// ArticleFor returns "a" or "an" depending on whether the given word would be
// pronounced starting with a vowel sound. If upper is true, the article is
// capitalized.
func ArticleFor(word string, upper bool) string {
	art := "a"
	if len(word) > 0 {
		switch word[0] {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			art = "an"
		}
	}
	if upper {
		return strings.ToUpper(art[:1]) + art[1:]
	}
	return art
}
