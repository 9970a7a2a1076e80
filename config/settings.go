package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ancientlore/makesite/content"
	"github.com/pelletier/go-toml/v2"
)

// SettingsFile is the name of the optional generator settings file.
const SettingsFile = "makesite.cfg"

// ReadingTag describes one category of the reading log.
type ReadingTag struct {
	Name     string `toml:"name"`     // Value of the tag header
	Title    string `toml:"title"`    // Heading shown for the category; the title-cased name when empty
	Singular string `toml:"singular"` // Label for a count of one
	Plural   string `toml:"plural"`   // Label for other counts
}

// Settings control what the generator reads and writes. They are separate from
// the params, which only feed placeholders.
type Settings struct {
	Output       string       `toml:"output"`        // Output directory, recreated on every run
	Static       string       `toml:"static"`        // Directory copied as is into the output
	Markdown     string       `toml:"markdown"`      // Markdown engine: blackfriday, goldmark or none
	CodeStyle    string       `toml:"code_style"`    // Chroma style for the goldmark engine
	SummaryWords int          `toml:"summary_words"` // Words kept in list summaries
	BlogTitle    string       `toml:"blog_title"`
	ReadingTitle string       `toml:"reading_title"`
	MusicTitle   string       `toml:"music_title"`
	TextDirs     []string     `toml:"text_dirs"`    // Directories under Static listed as text files
	ReadingTags  []ReadingTag `toml:"reading_tags"` // Reading log categories, in display order
	CacheBytes   int64        `toml:"cache_bytes"`  // Size of the layout cache
}

// DefaultSettings returns the settings used when no settings file is present.
func DefaultSettings() Settings {
	return Settings{
		Output:       "_site",
		Static:       "static",
		Markdown:     "blackfriday",
		CodeStyle:    "github",
		SummaryWords: content.DefaultSummaryWords,
		BlogTitle:    "Blog",
		ReadingTitle: "Reading Log",
		MusicTitle:   "Music",
		ReadingTags: []ReadingTag{
			{Name: "non-fiction", Singular: "book", Plural: "books"},
			{Name: "technical", Singular: "book", Plural: "books"},
			{Name: "textbook", Singular: "book", Plural: "books"},
			{Name: "paper", Singular: "paper", Plural: "papers"},
			{Name: "fiction", Singular: "book", Plural: "books"},
		},
		CacheBytes: 4 << 20,
	}
}

// LoadSettings reads the named TOML file from fsys over the defaults.
// It is not an error if the file does not exist.
func LoadSettings(fsys fs.FS, name string) (Settings, error) {
	s := DefaultSettings()
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("Cannot read settings file: %w", err)
	}
	var f Settings
	if err = toml.Unmarshal(b, &f); err != nil {
		return s, fmt.Errorf("Cannot parse settings file: %w", err)
	}
	s.merge(f)
	if err = s.Validate(); err != nil {
		return s, fmt.Errorf("Invalid settings file: %w", err)
	}
	return s, nil
}

// merge copies the fields set in f over s.
func (s *Settings) merge(f Settings) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&s.Output, f.Output)
	setString(&s.Static, f.Static)
	setString(&s.Markdown, f.Markdown)
	setString(&s.CodeStyle, f.CodeStyle)
	setString(&s.BlogTitle, f.BlogTitle)
	setString(&s.ReadingTitle, f.ReadingTitle)
	setString(&s.MusicTitle, f.MusicTitle)
	if f.SummaryWords != 0 {
		s.SummaryWords = f.SummaryWords
	}
	if f.TextDirs != nil {
		s.TextDirs = f.TextDirs
	}
	if f.ReadingTags != nil {
		s.ReadingTags = f.ReadingTags
	}
	if f.CacheBytes != 0 {
		s.CacheBytes = f.CacheBytes
	}
}

// Validate reports settings the generator cannot work with.
func (s Settings) Validate() error {
	if s.SummaryWords < 0 {
		return fmt.Errorf("summary_words must not be negative: %d", s.SummaryWords)
	}
	if s.CacheBytes < 0 {
		return fmt.Errorf("cache_bytes must not be negative: %d", s.CacheBytes)
	}
	seen := make(map[string]bool, len(s.ReadingTags))
	for _, t := range s.ReadingTags {
		if t.Name == "" {
			return errors.New("reading tag without a name")
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate reading tag %q", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}
