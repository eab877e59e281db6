package analysis

import (
	"regexp"
	"strings"

	"github.com/ingrediq/docintel-cli/internal/model"
)

// sectionSeparator splits a well-formed answer sheet into per-question sections.
const sectionSeparator = "---"

// lineKind classifies a line of model output by the field it opens.
type lineKind int

const (
	lineContinuation lineKind = iota
	lineQuestion
	lineAnswer
	lineSource
)

var fieldLabels = []struct {
	kind  lineKind
	label string
}{
	{lineQuestion, "Question"},
	{lineAnswer, "Answer"},
	{lineSource, "Source"},
}

// Parse converts the model's free-text answer sheet into ordered analysis
// records. The model does not reliably obey the requested format, so parsing
// cascades through three tiers of increasing looseness: a structured split on
// `---`, a label-split fallback when no separator is present, and a loose
// regex recovery pass when neither yields records. Parse never fails; totally
// unusable text produces zero records.
func Parse(text string) []model.AnalysisRecord {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var records []model.AnalysisRecord
	if strings.Contains(text, sectionSeparator) {
		for _, section := range strings.Split(text, sectionSeparator) {
			if rec, ok := parseSection(section); ok {
				records = append(records, rec)
			}
		}
	} else {
		for _, section := range labelSplit(text) {
			if rec, ok := parseSection(section); ok {
				records = append(records, rec)
			}
		}
	}

	if len(records) == 0 {
		records = recoverLoose(text)
	}
	return records
}

// parseSection scans one section line by line, opening a field on each label
// line and space-joining unlabeled lines onto the last opened non-empty
// field. A section yields a record only when both question and answer are
// non-empty; a missing source gets the default.
func parseSection(section string) (model.AnalysisRecord, bool) {
	var question, answer, source string
	current := lineContinuation

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		kind, text := classifyLine(line)
		switch kind {
		case lineQuestion:
			question = text
			current = lineQuestion
		case lineAnswer:
			answer = text
			current = lineAnswer
		case lineSource:
			source = text
			current = lineSource
		default:
			switch {
			case current == lineQuestion && question != "":
				question += " " + line
			case current == lineAnswer && answer != "":
				answer += " " + line
			case current == lineSource && source != "":
				source += " " + line
			}
		}
	}

	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	source = strings.TrimSpace(source)

	if question == "" || answer == "" {
		return model.AnalysisRecord{}, false
	}
	if source == "" {
		source = model.UnspecifiedSource
	}
	return model.AnalysisRecord{Question: question, Answer: answer, Source: source}, true
}

// classifyLine decides which field a line opens, returning the text after
// the label. Lines opening no field are continuations.
func classifyLine(line string) (lineKind, string) {
	for _, f := range fieldLabels {
		if text, ok := matchLabel(line, f.label); ok {
			return f.kind, text
		}
	}
	return lineContinuation, line
}

// matchLabel strips a field label from the start of a line. Recognized
// variants: `Label:`, `Label ` (trailing space), `**Label:**` and
// `**Label**` bold markup, each optionally followed by the field text.
func matchLabel(line, label string) (string, bool) {
	rest := line
	bold := strings.HasPrefix(rest, "**")
	if bold {
		rest = strings.TrimLeft(rest, "*")
	}
	if !strings.HasPrefix(rest, label) {
		return "", false
	}
	rest = rest[len(label):]
	if !bold && !strings.HasPrefix(rest, ":") && !strings.HasPrefix(rest, " ") {
		// Bare labels need a colon or space so "Questions" is not a label.
		return "", false
	}
	rest = strings.TrimLeft(rest, "*")
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, ":")
	rest = strings.TrimLeft(strings.TrimSpace(rest), "*")
	return strings.TrimSpace(rest), true
}

// questionMarkerRe matches question labels (plain or bold) for the
// label-split fallback when the text carries no `---` separators.
var questionMarkerRe = regexp.MustCompile(`(?i)(?:\*\*question[:\s]*\*\*|question[:\s]*)`)

// labelSplit cuts unseparated text at each question marker and rebuilds each
// fragment as a synthetic section with a normalized Question: prefix.
func labelSplit(text string) []string {
	parts := questionMarkerRe.Split(text, -1)
	var sections []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sections = append(sections, "Question: "+part)
	}
	return sections
}

var (
	// questionStartRe locates loose-recovery span starts.
	questionStartRe = regexp.MustCompile(`(?i)question`)
	// looseSpanRe pulls question/answer/source fields out of one span.
	looseSpanRe = regexp.MustCompile(`(?is)\Aquestion[:\s]*(?:\d+[:.]?)?\s*(.*?)answer[:\s]*(.*?)source[:\s]*(.*)\z`)
	asterisksRe = regexp.MustCompile(`\*+`)
)

// recoverLoose is the last-resort pass: the text is cut into spans running
// from each `question` occurrence to the next (or end of text), and each span
// is matched for question/answer/source fields with all markup stripped.
func recoverLoose(text string) []model.AnalysisRecord {
	starts := questionStartRe.FindAllStringIndex(text, -1)
	var records []model.AnalysisRecord

	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		m := looseSpanRe.FindStringSubmatch(text[loc[0]:end])
		if m == nil {
			continue
		}

		question := strings.TrimSpace(asterisksRe.ReplaceAllString(m[1], ""))
		answer := strings.TrimSpace(asterisksRe.ReplaceAllString(m[2], ""))
		source := strings.TrimSpace(asterisksRe.ReplaceAllString(m[3], ""))

		if question == "" || answer == "" {
			continue
		}
		if source == "" {
			source = model.UnspecifiedSource
		}
		records = append(records, model.AnalysisRecord{Question: question, Answer: answer, Source: source})
	}
	return records
}
