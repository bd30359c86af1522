// Package mdast provides the document model shared by every mdhtml stage:
//   - Token: the classifier's output vocabulary
//   - Container and Text: the two node variants
//   - Tree: the document under construction, with its container cursor
//   - Walk: read-only traversal of a finished tree
package mdast
