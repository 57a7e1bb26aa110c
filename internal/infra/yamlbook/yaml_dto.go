package yamlbook

// YAMLBook is the on-disk shape of a seed file.
type YAMLBook struct {
	Contacts []YAMLContact `yaml:"contacts"`
}

type YAMLContact struct {
	Name     string   `yaml:"name"`
	Birthday string   `yaml:"birthday"`
	Phones   []string `yaml:"phones"`
}
