package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Parser classifies s-Java source lines
type Parser struct{}

// NewParser creates a new line classifier
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile classifies every line of the file at path
func (p *Parser) ParseFile(ctx context.Context, path string) (*ParsedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return p.ParseContent(ctx, path, f)
}

// ParseContent classifies source read from r. name is only used for logging
// and for the returned ParsedFile.
func (p *Parser) ParseContent(ctx context.Context, name string, r io.Reader) (*ParsedFile, error) {
	reader := bufio.NewReader(r)

	parsed := &ParsedFile{
		Path:  name,
		Lines: make([]ParsedLine, 0, 64),
	}

	// lines have no length limit
	n := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("failed to read file: %w", readErr)
		}
		if readErr == io.EOF && raw == "" {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n++
		line, err := p.ParseLine(strings.TrimSuffix(raw, "\n"), n)
		if err != nil {
			return nil, err
		}
		parsed.Lines = append(parsed.Lines, line)

		if readErr == io.EOF {
			break
		}
	}

	log.Debug().
		Str("file", name).
		Int("lines", len(parsed.Lines)).
		Msg("classified source")

	return parsed, nil
}

// ParseLine assigns a kind to a single raw line (without its terminator)
func (p *Parser) ParseLine(raw string, n int) (ParsedLine, error) {
	// a CR left over from CRLF input is whitespace like any other
	raw = strings.TrimRight(raw, "\r")
	trimmed := TrimSpace(raw)

	if trimmed == "" {
		return ParsedLine{Number: n, Kind: KindEmpty, Raw: raw}, nil
	}
	if strings.HasPrefix(raw, "//") {
		return ParsedLine{Number: n, Kind: KindComment, Raw: raw}, nil
	}
	if strings.Contains(raw, "/*") || strings.Contains(raw, "*/") || strings.Contains(raw, "//") {
		return ParsedLine{}, syntaxErr(n, raw, "comments must start at the beginning of a line")
	}
	if CloseBrace.MatchString(raw) {
		return ParsedLine{Number: n, Kind: KindCloseBrace, Raw: raw}, nil
	}

	switch {
	case strings.HasSuffix(trimmed, ";"):
		return p.classifyStatement(raw, trimmed, n)
	case strings.HasSuffix(trimmed, "{"):
		return p.classifyBlockHeader(raw, n)
	}
	return ParsedLine{}, syntaxErr(n, raw, "line must end with ';' or '{'")
}

func (p *Parser) classifyStatement(raw, trimmed string, n int) (ParsedLine, error) {
	switch {
	case ReturnStmt.MatchString(raw):
		return ParsedLine{Number: n, Kind: KindReturn, Raw: raw}, nil
	case VarDeclLine.MatchString(raw):
		return ParsedLine{Number: n, Kind: KindVarDecl, Raw: raw}, nil
	case MethodCall.MatchString(raw):
		return ParsedLine{Number: n, Kind: KindMethodCall, Raw: raw}, nil
	}

	body := strings.TrimSuffix(trimmed, ";")
	if strings.Contains(body, "=") {
		for _, part := range strings.Split(body, ",") {
			token := TrimSpace(part)
			if token == "" || !OneAssignmentToken.MatchString(token) {
				return ParsedLine{}, syntaxErr(n, raw, "malformed assignment")
			}
		}
		return ParsedLine{Number: n, Kind: KindAssignment, Raw: raw}, nil
	}

	return ParsedLine{}, syntaxErr(n, raw, "unrecognized statement")
}

func (p *Parser) classifyBlockHeader(raw string, n int) (ParsedLine, error) {
	switch {
	case MethodDecl.MatchString(raw):
		return ParsedLine{Number: n, Kind: KindMethodDecl, Raw: raw}, nil
	case IfWhileHeader.MatchString(raw):
		return ParsedLine{Number: n, Kind: KindIfWhileHeader, Raw: raw}, nil
	}
	return ParsedLine{}, syntaxErr(n, raw, "unrecognized block header")
}

// TrimSpace strips ASCII whitespace only
func TrimSpace(s string) string {
	return strings.Trim(s, " \t\r\n\v\f")
}
