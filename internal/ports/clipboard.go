package ports

type Clipboard interface {
	WriteAll(text string) error
}
