package docs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/bankaccount"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	jsonlSession = "jsonl session"
	consoleCheck = "console check"
)

// pinnedNow is the time every documented session is replayed at.
const pinnedNow = "2025-10-07 09:30:00.000"

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md must load, and every topic file must be listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() returned an unexpected error: %v", err)
	}
	for _, topic := range all {
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in docs/readme.md", topic)
		}
	}
}

func TestGetTopic_NotFound(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() with an unknown topic succeeded, want an error")
	}
}

func TestGetTopic_All(t *testing.T) {
	doc, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(\"*\") returned an unexpected error: %v", err)
	}
	for _, heading := range []string{"# Session scripts", "# Statements", "# Queries"} {
		if !strings.Contains(doc, heading) {
			t.Errorf("GetTopic(\"*\") is missing %q", heading)
		}
	}
}

func TestCodeBlocks(t *testing.T) {
	t.Setenv(bankaccount.TestingNowEnv, pinnedNow)

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, file)
		})
	}
}

// HELPER

// Block represents a fenced code block in the markdown file.
type Block struct {
	Type    string
	Content string
	File    string
	Line    int
}

// parseMarkdown parses a markdown file and returns its session and check blocks.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Info.Segment.Value(content))
		switch lang {
		case jsonlSession, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}

		var blockContent strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			blockContent.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Type:    lang,
			Content: blockContent.String(),
			File:    file,
			Line:    lineNumber(content, fcb.Info.Segment.Start),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineNumber computes the line number of an offset in source.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

// runBlocks replays every session block of file and compares its output with
// the console check block that follows it.
func runBlocks(t *testing.T, file string) {
	t.Helper()

	var previousOutput string
	for _, block := range parseMarkdown(t, file) {
		switch block.Type {
		case jsonlSession:
			session, err := bankaccount.DecodeSession(strings.NewReader(block.Content))
			if err != nil {
				t.Fatalf("%s:%d: cannot decode session: %v", block.File, block.Line, err)
			}
			var out bytes.Buffer
			if _, err := session.Replay(bankaccount.NewRegistry(), &out); err != nil {
				t.Fatalf("%s:%d: replay failed: %v", block.File, block.Line, err)
			}
			previousOutput = out.String()

		case consoleCheck:
			want := strings.TrimSpace(block.Content)
			got := strings.TrimSpace(previousOutput)
			if want != got {
				t.Errorf("%s:%d: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot :%q\nwant:%q\n", block.File, block.Line, got, want, got, want)
			}
		}
	}
}
