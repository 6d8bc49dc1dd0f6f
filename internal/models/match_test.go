package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMatch(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAnswer string
		wantMatch  string
	}{
		{
			name:       "plain answer lowercased",
			input:      "Maya Angelou",
			wantAnswer: "Maya Angelou",
			wantMatch:  "maya angelou",
		},
		{
			name:       "stopwords and punctuation removed",
			input:      "The Sun, obviously.",
			wantAnswer: "The Sun, obviously.",
			wantMatch:  "sun obviously",
		},
		{
			name:       "separator overrides normalization",
			input:      "Muhammad Ali%%%ali",
			wantAnswer: "Muhammad Ali",
			wantMatch:  "ali",
		},
		{
			name:       "separator keeps match verbatim",
			input:      "-40%%%-40",
			wantAnswer: "-40",
			wantMatch:  "-40",
		},
		{
			name:       "interior punctuation survives",
			input:      "Tom's Diner",
			wantAnswer: "Tom's Diner",
			wantMatch:  "tom's diner",
		},
		{
			name:       "all stopwords yields empty match",
			input:      "to be or not to be",
			wantAnswer: "to be or not to be",
			wantMatch:  "",
		},
		{
			name:       "extra whitespace collapsed",
			input:      "  Apollo   13  ",
			wantAnswer: "  Apollo   13  ",
			wantMatch:  "apollo 13",
		},
		{
			name:       "numeric answer kept",
			input:      "2",
			wantAnswer: "2",
			wantMatch:  "2",
		},
		{
			name:       "empty input",
			input:      "",
			wantAnswer: "",
			wantMatch:  "",
		},
		{
			name:       "empty separator sides",
			input:      "%%%",
			wantAnswer: "",
			wantMatch:  "",
		},
		{
			name:       "separator after newline is not an override",
			input:      "The\nSun%%%star",
			wantAnswer: "The\nSun%%%star",
			wantMatch:  "sun%%%star",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, match := GenerateMatch(tt.input)
			assert.Equal(t, tt.wantAnswer, answer)
			assert.Equal(t, tt.wantMatch, match)
		})
	}
}

func TestNewQuestion(t *testing.T) {
	question := NewQuestion("Who boxed under the name Cassius Clay?", "Muhammad Ali%%%ali", 6, 2)

	assert.Equal(t, "Who boxed under the name Cassius Clay?", question.Text)
	assert.Equal(t, "Muhammad Ali", question.Answer)
	assert.Equal(t, "ali", question.Match)
	assert.Equal(t, uint(6), question.CategoryID)
	assert.Equal(t, 2, question.Difficulty)
}
