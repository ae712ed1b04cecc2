package ctdf

type Stop struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}
