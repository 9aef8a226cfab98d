package resolver

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

// DocumentLoader loads a structured document by its extension-less path.
// A missing document must yield an error matching fs.ErrNotExist.
type DocumentLoader interface {
	Load(path string) (map[string]any, error)
}

// DotenvLoader parses a KEY=VALUE dotfile. A missing file must yield an error
// matching fs.ErrNotExist.
type DotenvLoader interface {
	Load(path string) (map[string]string, error)
}
