package openai

import (
	"fmt"
	"strings"
)

const summarizePromptTemplate = `You are processing a long document to answer a question.
You have a rolling context of previous information and a new chunk to process.

Question: %s

Previous Context Summary:
%s

New Chunk to Process:
%s

Provide a concise summary that:
1. Captures information relevant to answering the question
2. Integrates with the previous context
3. Maintains important details and facts

Summary:`

const compressPromptTemplate = `Compress the following context while preserving all information relevant to answering the question.
Remove redundant information but keep all important facts and details.

Question: %s

Context to Compress:
%s

Compressed Context:`

const answerPromptTemplate = `Based on the context, answer the question by selecting the best choice.

Context:
%s

Question: %s

Choices:
%s

Think step by step, then provide your answer as a single letter (A, B, C, or D).

Answer:`

func buildSummarizePrompt(question, contextText, chunk string) string {
	if contextText == "" {
		contextText = "No previous context yet."
	}
	return fmt.Sprintf(summarizePromptTemplate, question, contextText, chunk)
}

func buildCompressPrompt(question, contextText string) string {
	return fmt.Sprintf(compressPromptTemplate, question, contextText)
}

func buildAnswerPrompt(question, contextText string, choices []string) string {
	var sb strings.Builder
	for i, choice := range choices {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%c: %s", 'A'+i, choice)
	}
	return fmt.Sprintf(answerPromptTemplate, contextText, question, sb.String())
}
