package common

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"createblogpost/config"
)

// Post holds everything derived for a new blog post
type Post struct {
	Title string
	Slug  string
	Date  string

	// Output paths, relative to the blog root
	FilePath    string
	HeaderImage string
	TeaserImage string

	// Fixed front-matter values
	Category string
	Excerpt  string
	Caption  string
}

// NewPost derives slug and paths from the title and the given date.
// The result depends on nothing else but cfg.
func NewPost(title string, now time.Time, cfg *config.Config) *Post {
	slug := Slugify(title)
	date := now.Format(cfg.Posts.DateFormat)
	imagesDir := strings.TrimRight(cfg.Images.Dir, "/")

	return &Post{
		Title:       title,
		Slug:        slug,
		Date:        date,
		FilePath:    fmt.Sprintf("%s/%s-%s.md", strings.TrimRight(cfg.Posts.Dir, "/"), date, slug),
		HeaderImage: fmt.Sprintf("%s/header-%s.jpg", imagesDir, slug),
		TeaserImage: fmt.Sprintf("%s/teaser-%s.jpg", imagesDir, slug),
		Category:    cfg.FrontMatter.Category,
		Excerpt:     cfg.FrontMatter.Excerpt,
		Caption:     cfg.FrontMatter.Caption,
	}
}

// Slugify lower-cases the title and replaces spaces with hyphens.
// Nothing else is touched: punctuation, slashes and non-ASCII letters pass through.
func Slugify(title string) string {
	slug := cases.Lower(language.Und).String(title)
	return strings.ReplaceAll(slug, " ", "-")
}

// Markdown renders the post as YAML front-matter without a body
func (p *Post) Markdown() ([]byte, error) {
	header := mapping(
		"image", p.HeaderImage,
		"teaser", p.TeaserImage,
		"caption", p.Caption,
	)

	root := mapping(
		"title", p.Title,
		"categories", p.Category,
		"excerpt", p.Excerpt,
	)
	root.Content = append(root.Content, key("header"), header)

	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	buf.WriteString("---\n")
	return buf.Bytes(), nil
}

// Write stores the markdown at FilePath, replacing any existing post.
// Parent directories must already exist.
func (p *Post) Write() error {
	content, err := p.Markdown()
	if err != nil {
		return err
	}

	if err := os.WriteFile(p.FilePath, content, 0644); err != nil {
		return fmt.Errorf("failed to write post: %w", err)
	}

	return nil
}

// mapping builds a block mapping from key/value pairs; values are always double-quoted
func mapping(pairs ...string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(pairs); i += 2 {
		node.Content = append(node.Content, key(pairs[i]), &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Style: yaml.DoubleQuotedStyle,
			Value: pairs[i+1],
		})
	}
	return node
}

func key(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}
