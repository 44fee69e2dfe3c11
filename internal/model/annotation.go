package model

import "sort"

// Annotation is a single "as of <Month> <Year>" occurrence in a document.
type Annotation struct {
	// Line is the 1-based line holding the last character of the match.
	Line int

	// Date is the month the annotation refers to.
	Date YearMonth
}

// Collection groups annotations by document path.
// Paths iterate in lexicographic order regardless of insertion order,
// and a document is never stored with an empty annotation list.
type Collection struct {
	docs map[string][]Annotation
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{docs: make(map[string][]Annotation)}
}

// Set stores the annotations for path, replacing any previous entry.
// An empty list removes the document.
func (c *Collection) Set(path string, annotations []Annotation) {
	if len(annotations) == 0 {
		delete(c.docs, path)
		return
	}
	c.docs[path] = annotations
}

// Get returns the annotations stored for path.
func (c *Collection) Get(path string) ([]Annotation, bool) {
	annotations, ok := c.docs[path]
	return annotations, ok
}

// Paths returns the stored document paths in lexicographic order.
func (c *Collection) Paths() []string {
	paths := make([]string, 0, len(c.docs))
	for path := range c.docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of documents.
func (c *Collection) Len() int {
	return len(c.docs)
}

// IsEmpty reports whether the collection holds no documents.
func (c *Collection) IsEmpty() bool {
	return len(c.docs) == 0
}

// AnnotationCount returns the number of annotations across all documents.
func (c *Collection) AnnotationCount() int {
	total := 0
	for _, annotations := range c.docs {
		total += len(annotations)
	}
	return total
}
