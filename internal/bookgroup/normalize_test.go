package bookgroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain hangul", "토지", "토지"},
		{"internal space", "토 지", "토지"},
		{"trailing space", "토지 ", "토지"},
		{"many spaces", "토  지  ", "토지"},
		{"tab and newline", "토\t지\n", "토지"},
		{"nbsp and ideographic space", "토 지　", "토지"},
		{"latin lowercased", "The Great Gatsby", "thegreatga"},
		{"digits and underscore kept", "Catch_22", "catch_22"},
		{"punctuation stripped", "토지 (1부)", "토지1부"},
		{"emoji stripped", "토지📚", "토지"},
		{"only punctuation", "!!! ??? ...", ""},
		{"only whitespace", "   \t  ", ""},
		{"hangul jamo stripped", "ㅋㅋㅋ토지", "토지"},
		{"cjk ideographs stripped", "大地토지", "토지"},
		{"mixed scripts", "토지 The Land!", "토지theland"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"토지",
		"토 지",
		"The Great Gatsby",
		"한국 현대문학의 이해와 감상",
		"!!!",
		"Catch-22: A Novel",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize(Normalize(%q))", in)
	}
}

func TestNormalize_WhitespaceInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("토지"), Normalize("토 지"))
	assert.Equal(t, Normalize("토지"), Normalize("토  지  "))
	assert.Equal(t, Normalize("토지"), Normalize(" 토\t지 "))
}

func TestNormalize_TruncatesToTenRunes(t *testing.T) {
	long := "한국 현대문학의 이해와 감상을 위한 종합적인 안내서"
	got := Normalize(long)
	assert.Equal(t, 10, len([]rune(got)))
	assert.Equal(t, "한국현대문학의이해와", got)

	// Two long titles sharing the first 10 cleaned runes collapse to the
	// same key. Lossy and documented, not a bug.
	other := "한국 현대문학의 이해와 감상을 위한 다른 안내서"
	assert.Equal(t, got, Normalize(other))
}

func TestGroupKey(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		author string
		want   string
	}{
		{"title only", "토지", "", "토지"},
		{"title and author", "토 지", "박경리", "토지-박경리"},
		{"author spacing ignored", "토지", "박 경리", "토지-박경리"},
		{"author all punctuation keeps separator", "토지", "???", "토지-"},
		{"unrecognizable title keeps author part", "!!!", "박경리", "-박경리"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupKey(tt.title, tt.author))
		})
	}
}

func TestGroupKey_DifferentAuthorsSplitGroups(t *testing.T) {
	assert.NotEqual(t, GroupKey("토지", "박경리"), GroupKey("토지", "김영하"))
	assert.NotEqual(t, GroupKey("토지", "박경리"), GroupKey("토지", ""))
}
