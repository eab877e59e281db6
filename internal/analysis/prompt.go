package analysis

import (
	"fmt"
	"strings"

	"github.com/ingrediq/docintel-cli/internal/catalog"
)

// analysisPromptTemplate is the instruction prompt sent for each category.
// The three-line Question/Answer/Source contract and the `---` separator are
// what the answer-sheet parser expects back.
const analysisPromptTemplate = `You are a specialized document analysis assistant focused on %s information extraction.

DOCUMENT CONTENT:
%s

CATEGORY-SPECIFIC GUIDANCE:
%s

INSTRUCTIONS:
1. Answer each question based ONLY on the information explicitly stated in the provided document(s)
2. If the information is not available in the document, respond with "No data available to answer this question"
3. Do NOT make assumptions or provide general knowledge answers
4. For each answer, provide the source reference (document name/section where the information was found)
5. Be precise and extract exact values/information as stated in the document
6. For Yes/No questions, only answer Yes if explicitly confirmed in the document, otherwise answer No or Unknown
7. IMPORTANT: Look for both direct and indirect information that could answer the questions
8. Be thorough - even if information is presented in tables, charts, or scattered across the document
9. For %s questions specifically, look for related terms and synonyms
10. Pay special attention to numerical data, tables, and structured information
11. If you find partial information that relates to a question, include it in your answer

QUESTIONS TO ANALYZE:
%s

Please provide answers in the following format:
Question: [Question text]
Answer: [Your answer based on document content - be specific and include exact values when available]
Source: [Document name/section where information was found]
---

If no relevant information is found for a question, use:
Question: [Question text]
Answer: No data available to answer this question
Source: Information not found in provided documents
---

IMPORTANT: Be thorough and look carefully through all the provided content. Even if information seems scattered or is in table format, extract and compile it to answer the questions.`

// systemPromptTemplate identifies the assistant's role for one category.
const systemPromptTemplate = "You are a precise document analysis assistant specializing in %s information extraction. Extract information only from the provided documents. Be thorough and look for both direct and indirect information. Pay special attention to tables, numerical data, and structured information."

// BuildPrompt renders the analysis prompt for a category: budgeted document
// content, the category guidance sentence, and the numbered question list
// with the mandated answer format. Pure templating, no validation.
func BuildPrompt(content string, questions []string, category string) string {
	var numbered strings.Builder
	for i, q := range questions {
		if i > 0 {
			numbered.WriteByte('\n')
		}
		fmt.Fprintf(&numbered, "%d. %s", i+1, q)
	}

	return fmt.Sprintf(analysisPromptTemplate,
		category,
		content,
		catalog.Guidance(category),
		category,
		numbered.String(),
	)
}

// SystemPrompt returns the system message for a category's analysis call.
func SystemPrompt(category string) string {
	return fmt.Sprintf(systemPromptTemplate, category)
}
