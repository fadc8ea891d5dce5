// Package extract provides text extractors for the document loader.
// Each extractor turns one staged file format into plain text suitable
// for a document record's content field.
package extract
