package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"config.md":         {Data: []byte("# Config\n\nRules live in shinydir.toml")},
		"option-dry.txt":    {Data: []byte("Dry mode moves nothing")},
		"nested/scripts.md": {Data: []byte("# Scripts")},
		"ignore.json":       {Data: []byte("{}")},
	}
}

func TestTopicManager_Load(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.Load())

	tests := []struct {
		name    string
		exists  bool
		content string
	}{
		{"config", true, "# Config\n\nRules live in shinydir.toml"},
		{"scripts", true, "# Scripts"},
		{"dry", true, "Dry mode moves nothing"},
		{"--dry", true, "Dry mode moves nothing"},
		{"ignore", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.name)
			assert.Equal(t, tt.exists, ok)
			if ok {
				assert.Equal(t, tt.content, topic.Content)
			}
		})
	}

	assert.Equal(t, []string{"config", "option-dry", "scripts"}, tm.ListTopics())
}

func TestTopicManager_CustomExtensions(t *testing.T) {
	tm := New(testFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, tm.Load())

	assert.Equal(t, []string{"ignore"}, tm.ListTopics())
}

func TestPrintTopicList(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	tm.PrintTopicList(&buf, "shinydir")

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  config\n  scripts\n")
	assert.Contains(t, out, "Option topics:\n  --dry\n")
	assert.Contains(t, out, "Use 'shinydir help <topic>'")
}

func TestPrintTopicList_Empty(t *testing.T) {
	tm := New(fstest.MapFS{}, Options{})
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	tm.PrintTopicList(&buf, "shinydir")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestInitialize_HelpCommand(t *testing.T) {
	newRoot := func() *cobra.Command {
		root := &cobra.Command{Use: "shinydir", Run: func(cmd *cobra.Command, args []string) {}}
		root.AddCommand(&cobra.Command{Use: "check", Short: "Check things", Run: func(cmd *cobra.Command, args []string) {}})
		return root
	}

	t.Run("renders topic", func(t *testing.T) {
		root := newRoot()
		_, err := Initialize(root, testFS(), Options{})
		require.NoError(t, err)

		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"help", "config"})
		require.NoError(t, root.Execute())

		assert.Equal(t, "# Config\n\nRules live in shinydir.toml", buf.String())
	})

	t.Run("lists topics", func(t *testing.T) {
		root := newRoot()
		_, err := Initialize(root, testFS(), Options{})
		require.NoError(t, err)

		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		assert.Contains(t, buf.String(), "Available help topics:")
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root := newRoot()
		_, err := Initialize(root, testFS(), Options{})
		require.NoError(t, err)

		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"help", "check"})
		require.NoError(t, root.Execute())

		assert.Contains(t, buf.String(), "Check things")
	})
}

func TestGlamourRenderer_NonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRenderer_Markdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Title\n\nbody", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}
