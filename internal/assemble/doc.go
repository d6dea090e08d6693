// Package assemble builds complete slide documents from ordered slides.
//
// Markdown output is a plain concatenation with "---" separators. HTML
// output executes the deck page template from package assets: one slide
// element per fragment, theme colors as CSS custom properties, and a
// navigation script for keyboard, buttons, themes and zoom.
package assemble
