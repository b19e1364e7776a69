// Package prompt builds the instruction strings and declared output schemas
// sent to the generative model. Builders are pure string construction; user
// input is embedded verbatim and the output contract is spelled out so the
// normalizer can hold the model to it.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"careercompass/internal/career"
	"careercompass/internal/llm"
)

// JobSearch asks for a batch of representative remote job listings for a
// free-text search query.
func JobSearch(query string) string {
	var b strings.Builder
	b.WriteString("You are a job search assistant for computer science students.\n")
	fmt.Fprintf(&b, "Generate a list of 5 representative remote job opportunities based on the search query: %q.\n\n", query)
	b.WriteString("For each job, provide:\n")
	b.WriteString("- A realistic job title.\n")
	b.WriteString("- A generic company (e.g., \"Tech Startup\" or \"Global E-commerce Platform\").\n")
	b.WriteString("- A brief 2-sentence description of the role.\n")
	b.WriteString("- The location must be \"Remote\".\n")
	b.WriteString("- A realistic relative date for when it was posted (e.g., \"Posted 5 days ago\").\n")
	b.WriteString("- A simple and effective 'searchQuery' string for finding this job (e.g., \"remote entry level data analyst\").\n\n")
	b.WriteString("Return the response in the specified JSON format.\n")
	return b.String()
}

// JobListingSchema declares the array-of-jobs shape for JobSearch prompts.
func JobListingSchema() *llm.OutputSchema {
	return &llm.OutputSchema{
		Array: true,
		Fields: []llm.Field{
			{Name: "title", Type: llm.TypeString, Description: "A realistic job title."},
			{Name: "company", Type: llm.TypeString, Description: "A generic company descriptor like 'Various Tech Companies' or 'Leading Financial Firms'."},
			{Name: "description", Type: llm.TypeString, Description: "A brief, 2-3 sentence summary of the role's responsibilities."},
			{Name: "location", Type: llm.TypeString, Description: "The job location, which should always be 'Remote'."},
			{Name: "postedDate", Type: llm.TypeString, Description: "A realistic relative date like 'Posted 2 days ago' or 'Posted 1 week ago'."},
			{Name: "searchQuery", Type: llm.TypeString, Description: "A concise search query string for this job title, including 'remote'. e.g., 'Junior DevOps Engineer remote'."},
		},
		Required: []string{"title", "company", "description", "location", "postedDate", "searchQuery"},
	}
}

// Recommendation asks for the single best career path given quiz answers.
// Answers are embedded as indented JSON keyed by question id.
func Recommendation(answers map[string]string) string {
	in, _ := json.MarshalIndent(answers, "", "  ")

	var b strings.Builder
	b.WriteString("A Computer Science student from Federal Polytechnic Bida has answered a personality and interest questionnaire.\n")
	b.WriteString("Based on their answers, recommend the most suitable career path for them from the following options:\n")
	for _, p := range career.PathNames() {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString("\nHere are the student's answers (question: answer):\n")
	b.Write(in)
	b.WriteString("\n\nAnalyze their responses to infer their inclinations (e.g., logical, creative, security-focused, data-driven, systems-oriented) and match them to the single best career path.\n")
	b.WriteString("Provide your response in the specified JSON format.\n")
	return b.String()
}

// RecommendationSchema declares the single-object recommendation shape,
// with the closed career enumeration attached to recommendedCareer.
func RecommendationSchema() *llm.OutputSchema {
	enum := make([]string, 0, len(career.PathNames()))
	for _, p := range career.PathNames() {
		enum = append(enum, string(p))
	}
	return &llm.OutputSchema{
		Fields: []llm.Field{
			{Name: "recommendedCareer", Type: llm.TypeString, Enum: enum, Description: "The single most suitable career path from the provided list."},
			{Name: "skills", Type: llm.TypeStringArray, Description: "A list of 5-7 key technical skills needed for this career."},
			{Name: "salaryRange", Type: llm.TypeString, Description: "A typical annual salary range for this career in Nigeria (NGN)."},
			{Name: "jobRoles", Type: llm.TypeStringArray, Description: "A list of 3-4 common job titles for this career path."},
			{Name: "relevantBooks", Type: llm.TypeStringArray, Description: "A list of 2-3 highly-recommended book titles for beginners in this field."},
			{Name: "reasoning", Type: llm.TypeString, Description: "A brief, 2-3 sentence explanation for why this career was recommended based on the user's answers."},
		},
		Required: []string{"recommendedCareer", "skills", "salaryRange", "jobRoles", "relevantBooks", "reasoning"},
	}
}

// FollowUp asks a free-form question in the context of an already
// recommended career.
func FollowUp(question, careerContext string) string {
	var b strings.Builder
	b.WriteString("Act as a helpful and encouraging AI career counselor.\n")
	fmt.Fprintf(&b, "A student was just recommended the career path of %q.\n", careerContext)
	b.WriteString("They have a follow-up question. Please provide a clear, concise, and helpful answer based on their recommended career.\n\n")
	fmt.Fprintf(&b, "Student's question: %q\n", question)
	return b.String()
}

// AdviserChat asks a question in the persona of a named adviser.
func AdviserChat(question, adviserName, adviserField string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a helpful and knowledgeable student adviser specializing in %s at Federal Polytechnic Bida.\n", adviserName, adviserField)
	b.WriteString("A student has asked you a question. Provide a concise, supportive, and helpful answer in 2-4 sentences.\n")
	b.WriteString("Keep your tone encouraging and conversational. Address the student directly.\n\n")
	fmt.Fprintf(&b, "Student's question: %q\n", question)
	return b.String()
}
