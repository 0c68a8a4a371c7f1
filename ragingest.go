// Package ragingest turns heterogeneous source content — crawled
// documentation sites or files pulled from a GitHub repository — into a
// normalized sequence of bounded text fragments suitable for vectorization,
// plus clean front-matter-annotated Markdown documents.
//
// This package contains domain types, pure text algorithms (normalization,
// chunking, noise filtering) and collaborator interfaces. Implementations
// live in subdirectories named after their primary dependency
// (e.g., goquery/, robotstxt/, weaviate/, ollama/).
package ragingest
