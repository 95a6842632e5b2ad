package generator

import "fmt"

// QuizTemplate is the exact block shape the model is told to emit.
const QuizTemplate = `[QUIZ START]
[QUESTION]
Question: Example question?
[A] Option A
[B] Option B
[C] Option C
[CORRECT: A]
[/QUESTION]
[QUIZ END]`

// SystemPrompt frames every tutoring request.
func SystemPrompt(language string) string {
	return fmt.Sprintf(`You are Study Buddy, a tutor for Classes 6-12.
RULES:
- Always respond in %s.
- Use LaTeX ($...$) for math/chemistry formulas where needed.
- TEACHING: 3-4 concise subtopics, with analogies, and end with a one-line check ("Does this make sense?").
- QUIZ: Output ONLY a quiz block exactly in this format:
%s
STRICT CONSTRAINTS:
- Exactly 5 MCQs per quiz.
- Options limited to A, B, C.
- One correct answer per question.
- Each question must include a single-line 'Question: ' line.
- No extra text before [QUIZ START] or after [QUIZ END].`, language, QuizTemplate)
}

// BuildLessonPrompt asks for one part of a chapter, taught in sequence.
func BuildLessonPrompt(classLevel, subject, chapter string, part int) string {
	return fmt.Sprintf(`TEACHING TASK.
Class: %s
Subject: %s
Chapter: %s
Part: %d

Teach clearly, 3-4 key subtopics, use analogies, and end with a one-line comprehension check. Do NOT include any quiz block.`,
		classLevel, subject, chapter, part)
}

// BuildQuizPrompt asks for the five-question block for one chapter part.
func BuildQuizPrompt(classLevel, subject, chapter string, part int) string {
	return fmt.Sprintf(`QUIZ TASK.
- Class: %s
- Subject: %s
- Chapter: %s
- Part: %d

Generate exactly 5 MCQs ONLY about this part. Use the strict QUIZ format with [QUESTION], [A], [B], [C], [CORRECT].`,
		classLevel, subject, chapter, part)
}

// BuildAnswerPrompt asks for a contextual answer to a learner's question.
func BuildAnswerPrompt(question, chapter, subject, classLevel string) string {
	return fmt.Sprintf(`ANSWERING TASK.
Context: The user is studying Class %s %s, focusing on the chapter '%s'. They have the following question: '%s'

Provide a clear, concise, and helpful answer. Explain the concept as you would to a student. Use an analogy if it helps. Keep the response focused only on answering the question.`,
		classLevel, subject, chapter, question)
}
