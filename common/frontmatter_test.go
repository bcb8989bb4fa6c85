package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"createblogpost/config"
)

var testDate = time.Date(2024, time.March, 7, 21, 30, 0, 0, time.Local)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "letters and spaces", title: "My First Post", expected: "my-first-post"},
		{name: "all uppercase", title: "HELLO WORLD", expected: "hello-world"},
		{name: "mixed case", title: "jetPack ComPose", expected: "jetpack-compose"},
		{name: "empty title", title: "", expected: ""},
		{name: "repeated spaces", title: "a  b", expected: "a--b"},
		{name: "punctuation passes through", title: "Kotlin: Why?", expected: "kotlin:-why?"},
		{name: "slashes pass through", title: "A/B Testing", expected: "a/b-testing"},
		{name: "unicode lower-cased", title: "Ærø Øst Å", expected: "ærø-øst-å"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, expected %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestNewPost(t *testing.T) {
	post := NewPost("My First Post", testDate, config.Default())

	if post.Slug != "my-first-post" {
		t.Errorf("Expected slug 'my-first-post', got '%s'", post.Slug)
	}
	if post.Date != "2024-03-07" {
		t.Errorf("Expected date '2024-03-07', got '%s'", post.Date)
	}
	if post.FilePath != "./_posts/2024-03-07-my-first-post.md" {
		t.Errorf("Unexpected post path '%s'", post.FilePath)
	}
	if post.HeaderImage != "./assets/images/posts/header-my-first-post.jpg" {
		t.Errorf("Unexpected header path '%s'", post.HeaderImage)
	}
	if post.TeaserImage != "./assets/images/posts/teaser-my-first-post.jpg" {
		t.Errorf("Unexpected teaser path '%s'", post.TeaserImage)
	}
}

func TestNewPostTrimsTrailingSlash(t *testing.T) {
	cfg := config.Default()
	cfg.Posts.Dir = "content/posts/"
	cfg.Images.Dir = "static/img/"

	post := NewPost("Go", testDate, cfg)

	if post.FilePath != "content/posts/2024-03-07-go.md" {
		t.Errorf("Unexpected post path '%s'", post.FilePath)
	}
	if post.HeaderImage != "static/img/header-go.jpg" {
		t.Errorf("Unexpected header path '%s'", post.HeaderImage)
	}
}

func TestMarkdown(t *testing.T) {
	post := NewPost("My First Post", testDate, config.Default())

	content, err := post.Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}

	expected := `---
title: "My First Post"
categories: "Android"
excerpt: "TODO"
header:
    image: "./assets/images/posts/header-my-first-post.jpg"
    teaser: "./assets/images/posts/teaser-my-first-post.jpg"
    caption: "Stockholm - Sweden"
---
`
	if string(content) != expected {
		t.Errorf("Unexpected markdown:\n%s\nexpected:\n%s", content, expected)
	}
}

func TestMarkdownQuotesTitle(t *testing.T) {
	titles := []string{`He said "hi"`, "", "yes", "#1: colons, hashes & more"}

	for _, title := range titles {
		post := NewPost(title, testDate, config.Default())
		content, err := post.Markdown()
		if err != nil {
			t.Fatalf("Markdown(%q) failed: %v", title, err)
		}

		parts := strings.SplitN(string(content), "---", 3)
		if len(parts) < 3 {
			t.Fatalf("Missing --- delimiters in:\n%s", content)
		}

		var fm struct {
			Title  string `yaml:"title"`
			Header struct {
				Image string `yaml:"image"`
			} `yaml:"header"`
		}
		if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
			t.Fatalf("Front-matter for %q is not valid YAML: %v", title, err)
		}
		if fm.Title != title {
			t.Errorf("Expected title %q after parsing, got %q", title, fm.Title)
		}
		if fm.Header.Image != post.HeaderImage {
			t.Errorf("Expected header image %q after parsing, got %q", post.HeaderImage, fm.Header.Image)
		}
	}
}

func TestWriteOverwritesExistingPost(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.Default()
	cfg.Posts.Dir = tmpDir

	post := NewPost("Same Title", testDate, cfg)
	if err := os.WriteFile(post.FilePath, []byte("old content"), 0644); err != nil {
		t.Fatalf("Failed to create existing post: %v", err)
	}

	if err := post.Write(); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "2024-03-07-same-title.md"))
	if err != nil {
		t.Fatalf("Failed to read post: %v", err)
	}
	if !strings.Contains(string(data), `title: "Same Title"`) {
		t.Errorf("Post was not overwritten:\n%s", data)
	}
}

func TestWriteDoesNotCreateDirectories(t *testing.T) {
	cfg := config.Default()
	cfg.Posts.Dir = filepath.Join(t.TempDir(), "_posts")

	post := NewPost("Orphan", testDate, cfg)
	if err := post.Write(); err == nil {
		t.Fatal("Expected error when posts directory is missing")
	}

	if _, err := os.Stat(cfg.Posts.Dir); !os.IsNotExist(err) {
		t.Errorf("Posts directory should not have been created")
	}
}
