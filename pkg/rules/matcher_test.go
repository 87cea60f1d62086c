// Test Type: Unit Test
// Description: Tests for the rules package - pattern conventions and keep matching

package rules_test

import (
	"testing"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		isDir   bool
		pattern string
		want    bool
	}{
		{"exact_filename", "notes.md", false, "notes.md", true},
		{"glob", "report.pdf", false, "*.pdf", true},
		{"glob_miss", "report.pdf", false, "*.md", false},
		{"dir_pattern_on_dir", "Projects", true, "Projects/", true},
		{"dir_pattern_on_file", "Projects", false, "Projects/", false},
		{"file_pattern_never_matches_dir", "build", true, "*", false},
		{"catchall_matches_file", "anything.bin", false, "*", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.MatchPattern(tt.entry, tt.isDir, tt.pattern)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePattern(t *testing.T) {
	tests := []struct {
		pattern string
		valid   bool
	}{
		{"*.pdf", true},
		{"Projects/", true},
		{"/", false},
		{"[unclosed", false},
		{"sub/*.txt", false},
		{"sub/dir/", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			err := rules.ValidatePattern(tt.pattern)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}
}

func TestPatternMatcher_Keep(t *testing.T) {
	matcher, err := rules.NewPatternMatcher(
		[]string{"*.part", "Inbox/"},
		[]string{`^IMG_\d+`},
		false,
		true,
	)
	require.NoError(t, err)

	tests := []struct {
		entry rules.Entry
		want  bool
	}{
		{rules.Entry{Name: "movie.mkv.part"}, true},
		{rules.Entry{Name: "Inbox", IsDir: true}, true},
		{rules.Entry{Name: "Other", IsDir: true}, false},
		{rules.Entry{Name: "IMG_0042.jpg"}, true},
		{rules.Entry{Name: ".hidden"}, true},
		{rules.Entry{Name: "report.pdf"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.entry.Name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Keep(tt.entry))
		})
	}
}

func TestPatternMatcher_Defaults(t *testing.T) {
	matcher, err := rules.NewPatternMatcher(nil, nil, true, false)
	require.NoError(t, err)

	assert.True(t, matcher.Keep(rules.Entry{Name: "dir", IsDir: true}), "directories stay by default")
	assert.False(t, matcher.Keep(rules.Entry{Name: ".bashrc"}), "hidden files move when keep_hidden is off")
	assert.False(t, matcher.Keep(rules.Entry{Name: "file.txt"}))
}

func TestNewPatternMatcher_Invalid(t *testing.T) {
	_, err := rules.NewPatternMatcher([]string{"[unclosed"}, nil, true, true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	_, err = rules.NewPatternMatcher(nil, []string{"(unclosed"}, true, true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	assert.Error(t, rules.ValidatePattern("/"))
}
