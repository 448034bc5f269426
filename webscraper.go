// Package webscraper provides a small web-content harvesting toolkit:
// fetch a page, parse its HTML, extract structured fields (title, text,
// links, images, custom selector matches), optionally analyze the text
// with a hosted language model, and persist results to flat files
// (JSON, CSV, XLSX, Markdown).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package webscraper
