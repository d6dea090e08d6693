package assets

// kind locates one type of asset in the asset tree, embedded or on disk.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = kind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
	themesKind   = kind{dir: "themes", ext: ".yaml", notFound: ErrThemesNotFound}
)

// path returns the slash-separated location of name within the tree.
func (k kind) path(name string) string {
	return k.dir + "/" + name + k.ext
}
