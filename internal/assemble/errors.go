package assemble

import "errors"

// ErrTemplateRender indicates the deck template failed to parse or execute.
var ErrTemplateRender = errors.New("deck template rendering failed")
