package quest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	blockMarker = "%% QUEST"
	multiline   = `"""`
)

// ParseError reports a problem at a specific line of quest text
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads quests in the block text format:
//
//	%% QUEST 1
//	id = 1
//	name = The Sewer Cleanse
//	offer_narrative = """
//	several lines
//	"""
//
// Lines starting with # are comments. Unknown keys are ignored and blocks
// without a non-zero id are dropped.
func Parse(r io.Reader) (Catalog, error) {
	p := &parser{catalog: make(Catalog)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line++
		if err := p.feed(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quest text: %w", err)
	}

	if p.key != "" {
		return nil, &ParseError{Line: p.startLine, Msg: fmt.Sprintf("unterminated %s value for %q", multiline, p.key)}
	}
	if err := p.flush(); err != nil {
		return nil, err
	}

	return p.catalog, nil
}

type parser struct {
	catalog Catalog
	current *Quest
	line    int

	// pending multi-line value
	key       string
	value     []string
	startLine int
}

func (p *parser) feed(line string) error {
	if p.key != "" {
		before, found := strings.CutSuffix(strings.TrimRight(line, " \t"), multiline)
		if !found {
			p.value = append(p.value, line)
			return nil
		}
		p.value = append(p.value, before)
		key := p.key
		p.key = ""
		return p.set(key, strings.TrimSpace(strings.Join(p.value, "\n")), p.startLine)
	}

	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, blockMarker):
		if err := p.flush(); err != nil {
			return err
		}
		p.current = &Quest{}
		return nil
	case trimmed == "" || strings.HasPrefix(trimmed, "#"):
		return nil
	case p.current == nil:
		return &ParseError{Line: p.line, Msg: "text before first " + blockMarker + " line"}
	}

	key, value, ok := strings.Cut(trimmed, "=")
	if !ok {
		return &ParseError{Line: p.line, Msg: "expected key = value"}
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if rest, open := strings.CutPrefix(value, multiline); open {
		if inline, closed := strings.CutSuffix(rest, multiline); closed {
			return p.set(key, strings.TrimSpace(inline), p.line)
		}
		p.key = key
		p.value = p.value[:0]
		if rest = strings.TrimSpace(rest); rest != "" {
			p.value = append(p.value, rest)
		}
		p.startLine = p.line
		return nil
	}

	return p.set(key, value, p.line)
}

// flush stores the current quest, if any
func (p *parser) flush() error {
	q := p.current
	p.current = nil
	if q == nil || q.ID == 0 {
		return nil
	}
	if _, dup := p.catalog[q.ID]; dup {
		return &ParseError{Line: p.line, Msg: fmt.Sprintf("duplicate quest id %d", q.ID)}
	}
	p.catalog[q.ID] = q
	return nil
}

func (p *parser) set(key, value string, line int) error {
	q := p.current
	switch key {
	case "id", "min_level", "reward_xp":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return &ParseError{Line: line, Msg: fmt.Sprintf("invalid %s %q", key, value)}
		}
		switch key {
		case "id":
			q.ID = uint32(n)
		case "min_level":
			q.MinLevel = uint32(n)
		case "reward_xp":
			q.RewardXP = uint32(n)
		}
	case "name":
		q.Name = value
	case "offer_title":
		q.OfferTitle = value
	case "offer_narrative":
		q.OfferNarrative = value
	case "offer_objective":
		q.OfferObjective = value
	case "offer_reward":
		q.OfferReward = value
	case "journal_description":
		q.JournalDescription = value
	case "journal_objective":
		q.JournalObjective = value
	case "journal_reward":
		q.JournalReward = value
	case "progress_format":
		q.ProgressFormat = value
	case "completion_message":
		q.CompletionMessage = value
	}
	return nil
}
