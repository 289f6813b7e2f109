// Package jobparse turns job postings on the web into structured records.
// It fetches a page, extracts the main text through an ordered chain of
// extraction strategies, cleans it, and asks a hosted language model for a
// schema-constrained reply that is decoded into a Vacancy.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, openai/, gemini/).
package jobparse
