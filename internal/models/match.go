package models

import (
	"regexp"
	"strings"
)

// MatchSeparator splits an author-supplied answer into display and match
// parts, e.g. "-40%%%-40" stores "-40" and matches "-40" verbatim.
const MatchSeparator = "%%%"

var (
	matchSepRegex = regexp.MustCompile(`^(.*)` + MatchSeparator + `(.*)`)
	nonWordRegex  = regexp.MustCompile(`^\W+|\W+$`)
)

// GenerateMatch derives the match term for an answer.
//
// When the answer contains the separator the author has specified the match
// term explicitly and it is stored verbatim, no normalization applied.
// Otherwise each whitespace-delimited token is stripped of leading and
// trailing non-word characters, lowercased, filtered against the English
// stopword list, and the remainder joined with single spaces. An answer made
// up entirely of stopwords yields an empty match term.
func GenerateMatch(answerText string) (answer, match string) {
	if groups := matchSepRegex.FindStringSubmatch(answerText); groups != nil {
		return groups[1], groups[2]
	}

	tokens := make([]string, 0, 8)
	for _, token := range strings.Fields(answerText) {
		token = strings.ToLower(nonWordRegex.ReplaceAllString(token, ""))
		if token == "" || stopwords[token] {
			continue
		}
		tokens = append(tokens, token)
	}

	return answerText, strings.Join(tokens, " ")
}
